package parse

type seqConfig struct {
	min, max       int
	hasMin, hasMax bool
	sep            func(data string, offset int) (int, error)
}

// Option configures Repeat, Pair and Series. Min and Max apply to Repeat
// only; Separator applies to all three.
type Option func(*seqConfig)

// Min requires at least n elements before a Repeat may end.
func Min(n int) Option {
	return func(c *seqConfig) {
		c.min = n
		c.hasMin = true
	}
}

// Max stops a Repeat after n elements.
func Max(n int) Option {
	return func(c *seqConfig) {
		c.max = n
		c.hasMax = true
	}
}

// Separator requires sep to match between consecutive elements. The
// separator's value is discarded.
func Separator[S any](sep Parser[S]) Option {
	return func(c *seqConfig) {
		c.sep = func(data string, offset int) (int, error) {
			res, err := sep.Parse(data, offset)
			if err != nil {
				return 0, err
			}
			return res.Next, nil
		}
	}
}

type repeatParser[T any] struct {
	child Parser[T]
	cfg   seqConfig
}

// Repeat applies child until it (or the separator before it) fails,
// collecting the values it produces. The failing attempt is not an error
// and consumes no input; it is simply the end of the repetition, unless
// fewer than Min elements were collected. Values produced by Suppress are
// matched but not collected.
func Repeat[T any](child Parser[T], opts ...Option) Parser[[]T] {
	p := &repeatParser[T]{child: child}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	return p
}

func (p *repeatParser[T]) Parse(data string, offset int) (Result[[]T], error) {
	values := []T{}
	for {
		next := offset
		if p.cfg.sep != nil && len(values) > 0 {
			n, err := p.cfg.sep(data, next)
			if err != nil {
				break
			}
			next = n
		}
		res, err := p.child.Parse(data, next)
		if err != nil {
			break
		}
		if res.Next == offset {
			// A zero-width success would repeat forever; treat it as the
			// end of the repetition instead.
			break
		}
		offset = res.Next
		if !isSkip(res.Value) {
			values = append(values, res.Value)
		}
		if p.cfg.hasMax && len(values) == p.cfg.max {
			break
		}
	}
	if p.cfg.hasMin && len(values) < p.cfg.min {
		return Result[[]T]{}, failf(InsufficientRepetitions, offset, "expected at least %d repetitions, found %d", p.cfg.min, len(values))
	}
	return Result[[]T]{Value: values, Next: offset}, nil
}

// Tuple is the value produced by Pair: two results of independent types.
type Tuple[A, B any] struct {
	First  A
	Second B
}

type pairParser[A, B any] struct {
	first  Parser[A]
	second Parser[B]
	cfg    seqConfig
}

// Pair runs two parsers in order and keeps both values, including values
// produced by Suppress. It is the strongly typed counterpart of Series;
// a failure of either side propagates unchanged.
func Pair[A, B any](first Parser[A], second Parser[B], opts ...Option) Parser[Tuple[A, B]] {
	p := &pairParser[A, B]{first: first, second: second}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	return p
}

func (p *pairParser[A, B]) Parse(data string, offset int) (Result[Tuple[A, B]], error) {
	a, err := p.first.Parse(data, offset)
	if err != nil {
		return Result[Tuple[A, B]]{}, err
	}
	offset = a.Next
	if p.cfg.sep != nil {
		offset, err = p.cfg.sep(data, offset)
		if err != nil {
			return Result[Tuple[A, B]]{}, err
		}
	}
	b, err := p.second.Parse(data, offset)
	if err != nil {
		return Result[Tuple[A, B]]{}, err
	}
	return Result[Tuple[A, B]]{Value: Tuple[A, B]{First: a.Value, Second: b.Value}, Next: b.Next}, nil
}

type seriesParser struct {
	children []Parser[any]
	cfg      seqConfig
}

// Series runs the given parsers in order and collects their values in
// order, skipping values produced by Suppress. Any child or separator
// failure aborts the whole series; there is no recovery and no
// backtracking. Use Erase to lift typed parsers into the form Series
// accepts.
func Series(children ...Parser[any]) Parser[[]any] {
	return &seriesParser{children: children}
}

// SeriesSep is Series with sep required between consecutive children.
func SeriesSep[S any](sep Parser[S], children ...Parser[any]) Parser[[]any] {
	p := &seriesParser{children: children}
	Separator(sep)(&p.cfg)
	return p
}

func (p *seriesParser) Parse(data string, offset int) (Result[[]any], error) {
	values := []any{}
	first := true
	for _, child := range p.children {
		if p.cfg.sep != nil && !first {
			n, err := p.cfg.sep(data, offset)
			if err != nil {
				return Result[[]any]{}, err
			}
			offset = n
		}
		res, err := child.Parse(data, offset)
		if err != nil {
			return Result[[]any]{}, err
		}
		offset = res.Next
		first = false
		if !isSkip(res.Value) {
			values = append(values, res.Value)
		}
	}
	return Result[[]any]{Value: values, Next: offset}, nil
}

type eraseParser[T any] struct {
	child Parser[T]
}

// Erase adapts a typed parser for use in a heterogeneous Series.
func Erase[T any](p Parser[T]) Parser[any] {
	return eraseParser[T]{child: p}
}

func (p eraseParser[T]) Parse(data string, offset int) (Result[any], error) {
	res, err := p.child.Parse(data, offset)
	if err != nil {
		return Result[any]{}, err
	}
	return Result[any]{Value: res.Value, Next: res.Next}, nil
}
