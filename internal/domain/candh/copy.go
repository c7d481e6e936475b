package candh

import "log/slog"

// Copy copies all described properties from src onto dest and returns the
// status of dest. src and dest must be pointers to the described type.
func Copy(c *Context, desc *Descriptor, src, dest any) Status {
	if src == nil || dest == nil {
		c.logger.Warn("Copy called without source or destination", slog.String("entity", desc.EntityName))

		return StatusNone
	}
	frame := c.push(desc, dest)
	defer c.pop()

	for i := range desc.Properties {
		p := &desc.Properties[i]
		switch p.Kind {
		case KindScalar:
			copyScalar(c, desc, p, src, dest)
		case KindString:
			copyString(c, desc, p, src, dest)
		case KindEnum:
			copyEnum(c, desc, p, src, dest)
		case KindDate, KindTimestamp:
			copyTime(c, desc, p, src, dest)
		case KindDecimal:
			copyDecimal(c, desc, p, src, dest)
		case KindCollection:
			copyCollection(c, desc, p, src, dest)
		case KindEntity:
			copyEntity(c, desc, p, src, dest)
		default:
			c.unsupported(desc.EntityName, p, "no handler for kind "+p.Kind.String())
		}
	}

	return frame.Status
}

// CopyValues runs a fresh copy and returns its context.
func CopyValues(logger *slog.Logger, desc *Descriptor, src, dest any) *Context {
	c := NewContext(logger)
	Copy(c, desc, src, dest)

	return c
}
