package calendar

// Pool recycles pages, so paging through time does not allocate a new page
// per position.
type Pool struct {
	free    []*Page
	newPage func() *Page
	created int
}

// NewPool returns a pool constructing new pages with the given function.
func NewPool(newPage func() *Page) *Pool {
	return &Pool{newPage: newPage}
}

// Acquire returns a recycled page if one is available, else a new one.
// The page must be rebound by the caller.
func (p *Pool) Acquire() *Page {
	if n := len(p.free); n > 0 {
		page := p.free[n-1]
		p.free = p.free[:n-1]
		return page
	}
	p.created++
	return p.newPage()
}

// Release returns a page to the pool.
func (p *Pool) Release(page *Page) {
	if page == nil {
		return
	}
	p.free = append(p.free, page)
}

// Created returns how many pages the pool has constructed overall.
func (p *Pool) Created() int { return p.created }

// Free returns how many pages are available for reuse.
func (p *Pool) Free() int { return len(p.free) }
