package rpn

type stack []float64

func (s *stack) push(value float64) {
	*s = append(*s, value)
}

func (s *stack) pop() float64 {
	last := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return last
}

func (s *stack) len() int {
	return len(*s)
}
