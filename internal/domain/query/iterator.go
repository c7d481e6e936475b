package query

import "context"

// blockIterator walks a backend block by block. The next block is fetched
// only if the previous one was full.
type blockIterator[T any] struct {
	backend   Backend[T]
	filter    *Filter
	blockSize int
	offset    int
	block     []*T
	pos       int
	exhausted bool
}

func newBlockIterator[T any](backend Backend[T], filter *Filter, blockSize int) *blockIterator[T] {
	return &blockIterator[T]{backend: backend, filter: filter, blockSize: blockSize}
}

// next returns nil once all rows are consumed.
func (it *blockIterator[T]) next(ctx context.Context) (*T, error) {
	for it.pos >= len(it.block) {
		if it.exhausted {
			return nil, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		block, err := it.backend.FetchBlock(ctx, it.filter, it.offset, it.blockSize)
		if err != nil {
			return nil, err
		}
		it.block = block
		it.pos = 0
		it.offset += len(block)
		if len(block) < it.blockSize {
			it.exhausted = true
		}
	}
	item := it.block[it.pos]
	it.pos++

	return item, nil
}
