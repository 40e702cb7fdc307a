package wordcodec

// bitWriter packs values MSB-first with no padding between them.
type bitWriter struct {
	buf   []byte
	acc   uint32
	nbits uint
}

func (w *bitWriter) write(v uint32, n uint) {
	w.acc = w.acc<<n | v&(1<<n-1)
	w.nbits += n
	for w.nbits >= 8 {
		shift := w.nbits - 8
		w.buf = append(w.buf, byte(w.acc>>shift))
		w.nbits -= 8
		w.acc &= 1<<shift - 1
	}
}

// finish flushes a partial byte, zero padded on the right.
func (w *bitWriter) finish() []byte {
	if w.nbits > 0 {
		w.buf = append(w.buf, byte(w.acc<<(8-w.nbits)))
		w.acc, w.nbits = 0, 0
	}
	return w.buf
}

// bitReader serves reads of 1 to 12 bits, buffering leftovers across byte boundaries.
type bitReader struct {
	src   []byte
	pos   int
	acc   uint32
	nbits uint
}

func (r *bitReader) read(n uint) (uint32, error) {
	for r.nbits < n {
		if r.pos >= len(r.src) {
			return 0, ErrTruncatedPayload
		}
		r.acc = r.acc<<8 | uint32(r.src[r.pos])
		r.pos++
		r.nbits += 8
	}
	shift := r.nbits - n
	v := r.acc >> shift
	r.nbits = shift
	r.acc &= 1<<shift - 1
	return v, nil
}
