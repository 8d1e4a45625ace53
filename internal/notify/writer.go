package notify

import (
	"io"

	"github.com/go-faster/jx"
)

// Writer prints each event message as one plain text line.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer sink printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Notify implements Sink. Write errors are dropped: a broken output stream
// must not abort the checkout flow.
func (s *Writer) Notify(e Event) {
	_, _ = io.WriteString(s.w, e.Message+"\n")
}

// JSON writes each event as a single-line JSON object:
//
//	{"kind":"cart.total","message":"Cart total: 25 TL","amount":"25"}
type JSON struct {
	w   io.Writer
	enc jx.Encoder
}

// NewJSON returns a JSON lines sink printing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Notify implements Sink.
func (s *JSON) Notify(e Event) {
	s.enc.Reset()
	s.enc.ObjStart()
	s.enc.FieldStart("kind")
	s.enc.Str(string(e.Kind))
	s.enc.FieldStart("message")
	s.enc.Str(e.Message)
	if e.Amount.Valid {
		s.enc.FieldStart("amount")
		s.enc.Str(e.Amount.Decimal.String())
	}
	s.enc.ObjEnd()

	buf := append(s.enc.Bytes(), '\n')
	_, _ = s.w.Write(buf)
}
