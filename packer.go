package crunch

import (
	"fmt"
	"image"
	"math"
)

// State is the lifecycle state of a Session.
type State int

const (
	Collecting State = iota
	Packing
	Placed
	Overflow
)

func (s State) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Packing:
		return "packing"
	case Placed:
		return "placed"
	case Overflow:
		return "overflow"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// PackItem is a sprite together with the padded footprint reserved for it.
type PackItem struct {
	Sprite *TrimmedSprite
	Size   image.Point
}

// Placement is where a sprite ended up on the canvas.
// Rect covers the sprite pixels; Footprint additionally covers the padding
// reserved to the right of and below the sprite.
type Placement struct {
	Rect      image.Rectangle
	Footprint image.Rectangle
	Sprite    *TrimmedSprite
}

// Session collects items and packs them once into a canvas, doubling the
// canvas when the items do not fit.
type Session struct {
	width, height int
	padding       int
	maxRetries    int
	sortOrder     SortOrder

	items   []PackItem
	retries int
	state   State
}

// SessionOption configures a Session during creation.
type SessionOption func(*Session)

// WithMaxRetries sets how many times the canvas may be doubled.
func WithMaxRetries(n int) SessionOption {
	return func(s *Session) {
		s.maxRetries = n
	}
}

// WithSortOrder sets the order items are offered to the placement algorithm.
func WithSortOrder(o SortOrder) SessionOption {
	return func(s *Session) {
		s.sortOrder = o
	}
}

// NewSession creates a session targeting a width x height canvas.
// Padding is added to the width and height of every item.
func NewSession(width, height, padding int, opts ...SessionOption) *Session {
	s := &Session{
		width:      width,
		height:     height,
		padding:    padding,
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add queues an item of w x h pixels. The payload is returned with its
// placement after Pack.
func (s *Session) Add(w, h int, payload *TrimmedSprite) error {
	if s.state != Collecting {
		return ErrSessionConsumed
	}
	if w < 0 || h < 0 || w > math.MaxInt-s.padding || h > math.MaxInt-s.padding {
		return fmt.Errorf("%dx%d with padding %d: %w", w, h, s.padding, ErrInputSpriteTooLarge)
	}
	s.items = append(s.items, PackItem{
		Sprite: payload,
		Size:   image.Pt(w+s.padding, h+s.padding),
	})
	return nil
}

// AddSprite queues a trimmed sprite using its own size.
func (s *Session) AddSprite(sprite *TrimmedSprite) error {
	size := sprite.Size()
	if err := s.Add(size.X, size.Y, sprite); err != nil {
		return &SpriteError{Name: sprite.Name, Err: err}
	}
	return nil
}

// Pack places every queued item with algo. When the items do not fit, both
// canvas dimensions are doubled and packing is retried, at most maxRetries
// times. The session cannot be used again afterwards.
func (s *Session) Pack(algo Algorithm) ([]Placement, error) {
	if s.state != Collecting {
		return nil, ErrSessionConsumed
	}
	s.state = Packing

	sizes := make([]image.Point, len(s.items))
	for i, it := range s.items {
		sizes[i] = it.Size
	}
	order := sortedOrder(sizes, s.sortOrder)

	for {
		pos, ok := placeOrdered(algo, image.Pt(s.width, s.height), sizes, order)
		if ok {
			s.state = Placed
			return s.placements(pos), nil
		}

		if s.retries >= s.maxRetries {
			s.state = Overflow
			return nil, fmt.Errorf("%d sprites do not fit %dx%d after %d retries: %w",
				len(s.items), s.width, s.height, s.retries, ErrInputSpriteTooLarge)
		}
		if s.width > math.MaxInt/2 || s.height > math.MaxInt/2 {
			s.state = Overflow
			return nil, fmt.Errorf("cannot grow canvas %dx%d: %w", s.width, s.height, ErrInputSpriteTooLarge)
		}

		Logger().Warn("sprites do not fit the canvas, growing",
			"from", fmt.Sprintf("%dx%d", s.width, s.height),
			"to", fmt.Sprintf("%dx%d", s.width*2, s.height*2))
		s.width *= 2
		s.height *= 2
		s.retries++
	}
}

func (s *Session) placements(pos []image.Point) []Placement {
	out := make([]Placement, len(s.items))
	for i, it := range s.items {
		var sz image.Point
		if it.Sprite != nil {
			sz = it.Sprite.Size()
		} else {
			sz = it.Size.Sub(image.Pt(s.padding, s.padding))
		}
		out[i] = Placement{
			Rect:      image.Rectangle{Min: pos[i], Max: pos[i].Add(sz)},
			Footprint: image.Rectangle{Min: pos[i], Max: pos[i].Add(it.Size)},
			Sprite:    it.Sprite,
		}
		Logger().Debug("placed sprite", "name", spriteName(it.Sprite), "rect", out[i].Rect)
	}
	return out
}

// CanvasSize returns the current canvas size, grown if Pack had to retry.
func (s *Session) CanvasSize() image.Point {
	return image.Pt(s.width, s.height)
}

// Retries returns how many times the canvas was doubled.
func (s *Session) Retries() int {
	return s.retries
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Len returns the number of queued items.
func (s *Session) Len() int {
	return len(s.items)
}

func spriteName(s *TrimmedSprite) string {
	if s == nil {
		return ""
	}
	return s.Name
}
