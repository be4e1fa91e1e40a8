package bankexchange

import (
	"bufio"
	"iter"
	"strings"
)

// Markers and field names of the exchange format.
const (
	HeaderMarker         = "1CClientBankExchange"
	DocumentStartKey     = "СекцияДокумент"
	DocumentEndMarker    = "КонецДокумента"
	FileEndMarker        = "КонецФайла"
	FieldDate            = "Дата"
	FieldAmount          = "Сумма"
	FieldPayerINN        = "ПлательщикИНН"
	FieldReceiverINN     = "ПолучательИНН"
	FieldPayerAccount    = "ПлательщикСчет"
	FieldReceiverAccount = "ПолучательСчет"
	FieldPaymentPurpose  = "НазначениеПлатежа"
	FieldNumber          = "Номер"
)

const maxLineBytes = 1024 * 1024

// Document is one payment document block: its kind (the value of the start
// marker) and its raw fields.
type Document struct {
	Kind   string
	Fields map[string]string
}

// Get returns a trimmed field value.
func (d Document) Get(key string) string {
	return strings.TrimSpace(d.Fields[key])
}

type readerState int

const (
	outsideDocument readerState = iota
	insideDocument
)

// Reader splits decoded exchange text into documents. A block that is not
// closed by its end marker is discarded, never emitted partially.
type Reader struct {
	text       string
	recognized bool
	truncated  int
	documents  int
	err        error
}

// NewReader creates a reader over already-decoded text.
func NewReader(text string) *Reader {
	return &Reader{text: text}
}

// Recognized reports whether the input carried the exchange header or at
// least one document start marker. Valid once Documents has been drained.
func (r *Reader) Recognized() bool { return r.recognized }

// Truncated is the number of blocks dropped for lack of an end marker.
func (r *Reader) Truncated() int { return r.truncated }

// Emitted is the number of complete documents yielded so far.
func (r *Reader) Emitted() int { return r.documents }

// Err is the error that stopped reading before the end of the text, such as
// a line longer than the scanner accepts. Documents after it were not seen.
func (r *Reader) Err() error { return r.err }

// Documents lazily yields every complete document block.
func (r *Reader) Documents() iter.Seq[Document] {
	return func(yield func(Document) bool) {
		r.recognized, r.truncated, r.documents, r.err = false, 0, 0, nil

		scanner := bufio.NewScanner(strings.NewReader(r.text))
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		state := outsideDocument
		var acc *Document

		for scanner.Scan() {
			line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
			if line == "" {
				continue
			}
			key, value, hasValue := strings.Cut(line, "=")
			key = strings.TrimSpace(key)

			switch {
			case line == HeaderMarker:
				r.recognized = true
				continue
			case hasValue && key == DocumentStartKey:
				r.recognized = true
				if state == insideDocument {
					r.truncated++
				}
				state = insideDocument
				acc = &Document{Kind: strings.TrimSpace(value), Fields: make(map[string]string)}
				continue
			case line == FileEndMarker:
				if state == insideDocument {
					r.truncated++
				}
				return
			}

			if state != insideDocument {
				continue
			}
			if line == DocumentEndMarker {
				doc := *acc
				state, acc = outsideDocument, nil
				r.documents++
				if !yield(doc) {
					return
				}
				continue
			}
			if hasValue && key != "" {
				acc.Fields[key] = value
			}
		}

		if state == insideDocument {
			r.truncated++
		}
		r.err = scanner.Err()
	}
}
