package candh

import (
	"log/slog"
)

// EntityChange collects the diffs of one entity touched by a copy. Members of
// auto-updated collections get their own change.
type EntityChange struct {
	EntityName string
	EntityID   int64
	Status     Status
	Diffs      []Diff
}

// Context carries the state of one copy run. It is not safe for concurrent use.
type Context struct {
	logger  *slog.Logger
	status  Status
	changes []*EntityChange
	stack   []*EntityChange
	warned  map[string]struct{}
}

// NewContext creates an empty run.
func NewContext(logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}

	return &Context{logger: logger, warned: map[string]struct{}{}}
}

// Status is the combined outcome of all copies made with this context.
func (c *Context) Status() Status {
	return c.status
}

// Changes returns the entities that received at least one history diff, root first.
func (c *Context) Changes() []EntityChange {
	result := make([]EntityChange, 0, len(c.changes))
	for _, ch := range c.changes {
		if len(ch.Diffs) > 0 {
			result = append(result, *ch)
		}
	}

	return result
}

func (c *Context) push(desc *Descriptor, dest any) *EntityChange {
	frame := &EntityChange{EntityName: desc.EntityName}
	if desc.ID != nil {
		frame.EntityID = desc.ID(dest)
	}
	c.changes = append(c.changes, frame)
	c.stack = append(c.stack, frame)

	return frame
}

func (c *Context) pop() {
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Context) current() *EntityChange {
	return c.stack[len(c.stack)-1]
}

func (c *Context) record(p *Property, oldValue, newValue *string) {
	frame := c.current()
	if p.NoHistory {
		frame.Status = frame.Status.Combine(StatusMinor)
		c.status = c.status.Combine(StatusMinor)

		return
	}
	frame.Diffs = append(frame.Diffs, Diff{
		Property: p.Name,
		Type:     p.TypeName,
		OldValue: oldValue,
		NewValue: newValue,
		Op:       opFor(oldValue, newValue),
	})
	frame.Status = StatusMajor
	c.status = StatusMajor
}

// markNested propagates the status of a nested copy into the enclosing entity.
func (c *Context) markNested(status Status) {
	if len(c.stack) == 0 || status == StatusNone {
		return
	}
	frame := c.current()
	frame.Status = frame.Status.Combine(status)
}

func (c *Context) unsupported(entityName string, p *Property, reason string) {
	key := entityName + "." + p.Name
	if _, ok := c.warned[key]; ok {
		return
	}
	c.warned[key] = struct{}{}
	c.logger.Warn("Unsupported property skipped while copying",
		slog.String("entity", entityName),
		slog.String("property", p.Name),
		slog.String("type", p.TypeName),
		slog.String("reason", reason),
	)
}
