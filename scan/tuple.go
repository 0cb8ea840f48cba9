package scan

// Tuple2 reads a line of exactly two whitespace separated tokens. A line with
// fewer or more tokens is a TokenCountMismatch.
func Tuple2[A, B Scalar](r *Reader) Pair[A, B] {
	return Tuple2Func[A, B](r, Parse[A], Parse[B])
}

func Tuple2Func[A, B any](r *Reader, parseA Parser[A], parseB Parser[B]) Pair[A, B] {
	line := r.mustLine()
	tokens := exactTokens(line, 2)
	return Pair[A, B]{
		First:  parseAt(line, tokens, 0, parseA),
		Second: parseAt(line, tokens, 1, parseB),
	}
}

func Tuple3[A, B, C Scalar](r *Reader) Triple[A, B, C] {
	return Tuple3Func[A, B, C](r, Parse[A], Parse[B], Parse[C])
}

func Tuple3Func[A, B, C any](
	r *Reader,
	parseA Parser[A],
	parseB Parser[B],
	parseC Parser[C],
) Triple[A, B, C] {
	line := r.mustLine()
	tokens := exactTokens(line, 3)
	return Triple[A, B, C]{
		First:  parseAt(line, tokens, 0, parseA),
		Second: parseAt(line, tokens, 1, parseB),
		Third:  parseAt(line, tokens, 2, parseC),
	}
}

func Tuple4[A, B, C, D Scalar](r *Reader) Quadruple[A, B, C, D] {
	return Tuple4Func[A, B, C, D](r, Parse[A], Parse[B], Parse[C], Parse[D])
}

func Tuple4Func[A, B, C, D any](
	r *Reader,
	parseA Parser[A],
	parseB Parser[B],
	parseC Parser[C],
	parseD Parser[D],
) Quadruple[A, B, C, D] {
	line := r.mustLine()
	tokens := exactTokens(line, 4)
	return Quadruple[A, B, C, D]{
		First:  parseAt(line, tokens, 0, parseA),
		Second: parseAt(line, tokens, 1, parseB),
		Third:  parseAt(line, tokens, 2, parseC),
		Fourth: parseAt(line, tokens, 3, parseD),
	}
}

func Tuple5[A, B, C, D, E Scalar](r *Reader) Quintuple[A, B, C, D, E] {
	return Tuple5Func[A, B, C, D, E](r, Parse[A], Parse[B], Parse[C], Parse[D], Parse[E])
}

func Tuple5Func[A, B, C, D, E any](
	r *Reader,
	parseA Parser[A],
	parseB Parser[B],
	parseC Parser[C],
	parseD Parser[D],
	parseE Parser[E],
) Quintuple[A, B, C, D, E] {
	line := r.mustLine()
	tokens := exactTokens(line, 5)
	return Quintuple[A, B, C, D, E]{
		First:  parseAt(line, tokens, 0, parseA),
		Second: parseAt(line, tokens, 1, parseB),
		Third:  parseAt(line, tokens, 2, parseC),
		Fourth: parseAt(line, tokens, 3, parseD),
		Fifth:  parseAt(line, tokens, 4, parseE),
	}
}
