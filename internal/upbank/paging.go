package upbank

import "context"

// Pager walks a paginated listing endpoint by following links.next. The
// sequence is finite, forward-only and cannot be restarted.
type Pager[T any] struct {
	session *Session
	next    string
	done    bool
	decode  func(resource) (T, error)
}

func newPager[T any](s *Session, first string, decode func(resource) (T, error)) *Pager[T] {
	return &Pager[T]{session: s, next: first, decode: decode}
}

// Next fetches one page and returns its records in upstream order. It
// returns nil once the listing is exhausted.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if p.done {
		return nil, nil
	}
	var doc listDocument
	if err := p.session.get(ctx, p.next, &doc); err != nil {
		return nil, err
	}
	if doc.Links.Next != nil && *doc.Links.Next != "" {
		p.next = *doc.Links.Next
	} else {
		p.done = true
	}
	items := make([]T, 0, len(doc.Data))
	for _, r := range doc.Data {
		item, err := p.decode(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// All drains every remaining page before returning. Large listings are
// fetched in full; callers see one complete ordered slice.
func (p *Pager[T]) All(ctx context.Context) ([]T, error) {
	all := make([]T, 0)
	for !p.done {
		batch, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
	}
	return all, nil
}
