package parse

type mapParser[S, T any] struct {
	child Parser[S]
	fn    func(S) (T, error)
}

// Map runs child and transforms its value. A child failure propagates
// unchanged. A transform error is reported as a PostParse failure, so
// enclosing combinators cannot tell a semantically invalid token from a
// syntactic mismatch. The offset is not rolled back: a value that parses
// but fails its transform still counts as consumed input.
func Map[S, T any](child Parser[S], fn func(S) (T, error)) Parser[T] {
	return &mapParser[S, T]{child: child, fn: fn}
}

// MapValue is Map for transforms that cannot fail.
func MapValue[S, T any](child Parser[S], fn func(S) T) Parser[T] {
	return Map(child, func(v S) (T, error) { return fn(v), nil })
}

func (p *mapParser[S, T]) Parse(data string, offset int) (Result[T], error) {
	res, err := p.child.Parse(data, offset)
	if err != nil {
		return Result[T]{}, err
	}
	value, err := p.fn(res.Value)
	if err != nil {
		wrapped := failf(PostParse, res.Next, "post-parse function failed: %v", err)
		wrapped.cause = err
		return Result[T]{}, wrapped
	}
	return Result[T]{Value: value, Next: res.Next}, nil
}

// skip is the no-value marker produced by Suppress. Repeat and Series
// recognise it and leave it out of their collected values.
type skip struct{}

func isSkip[T any](v T) bool {
	_, ok := any(v).(skip)
	return ok
}

// Suppress matches child but discards its value, keeping the match out of
// Repeat and Series aggregation. Pair still reports the marker in its
// positional slot.
func Suppress[T any](child Parser[T]) Parser[any] {
	return MapValue(child, func(T) any { return skip{} })
}
