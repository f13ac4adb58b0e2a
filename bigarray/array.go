// Package bigarray implements a growable array of arbitrary-precision integers
// with an attached segment tree.
// The tree answers range aggregate queries, such as the maximum or the sum of
// a range, and applies point and range updates in O(log n) time.
//
// An [Array] is not safe for concurrent mutation.
package bigarray

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/govalues/bignum"
)

const (
	DefaultCapacity     = 16 // initial capacity of a new array
	DefaultGrowthFactor = 2  // factor by which a full array grows
)

// Errors returned by [Array] and [Heap] operations.
var (
	ErrIndex     error = &bignum.Error{Kind: bignum.ErrDataStructure, Code: "INDEX_OUT_OF_RANGE", Msg: "index out of range"}
	ErrRange     error = &bignum.Error{Kind: bignum.ErrDataStructure, Code: "INVALID_RANGE", Msg: "invalid range"}
	ErrEmpty     error = &bignum.Error{Kind: bignum.ErrDataStructure, Code: "EMPTY", Msg: "no elements"}
	ErrArraySize error = &bignum.Error{Kind: bignum.ErrComputationLimit, Code: "ARRAY_SIZE_LIMIT", Msg: "array size limit exceeded"}
)

func errInvalidOption(format string, args ...any) error {
	return &bignum.Error{
		Kind: bignum.ErrValidation,
		Code: bignum.CodeInvalidArgument,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Option configures an [Array].
type Option func(*Array) error

// WithCapacity sets the initial capacity.
// The capacity must be positive.
func WithCapacity(n int) Option {
	return func(a *Array) error {
		if n < 1 {
			return errInvalidOption("capacity %v is less than 1", n)
		}
		a.capacity = n
		return nil
	}
}

// WithGrowthFactor sets the factor by which the capacity grows
// when a full array receives a new element.
// The factor must be at least 2.
func WithGrowthFactor(g int) Option {
	return func(a *Array) error {
		if g < 2 {
			return errInvalidOption("growth factor %v is less than 2", g)
		}
		a.growthFactor = g
		return nil
	}
}

// WithMaxSize sets the largest capacity the array may reach.
// The size must be positive and not greater than [bignum.MaxArraySize].
func WithMaxSize(n int) Option {
	return func(a *Array) error {
		if n < 1 || n > bignum.MaxArraySize {
			return errInvalidOption("max size %v is not within [1, %v]", n, bignum.MaxArraySize)
		}
		a.maxSize = n
		return nil
	}
}

// WithLogger sets the logger receiving debug records about capacity growth
// and tree rebuilds.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Array) error {
		if logger != nil {
			a.logger = logger
		}
		return nil
	}
}

// Array is a growable sequence of integers with a segment tree
// aggregating its elements with a [Combine] operator.
// The zero value is not usable, use [New] or [From].
type Array struct {
	data         []bignum.Int
	capacity     int
	growthFactor int
	maxSize      int
	combine      Combine
	tree         *tree
	logger       *slog.Logger
}

// New returns an empty array aggregating elements with combine.
//
// New returns an error if combine is nil or any of the options is invalid.
func New(combine Combine, opts ...Option) (*Array, error) {
	return From(nil, combine, opts...)
}

// From returns an array holding a copy of values.
// The capacity grows from the initial one until all values fit.
//
// From returns an error if:
//   - combine is nil or any of the options is invalid;
//   - the values do not fit into the maximum size;
//   - combine fails on the values.
func From(values []bignum.Int, combine Combine, opts ...Option) (*Array, error) {
	a, err := newArray(values, combine, opts)
	if err != nil {
		return nil, fmt.Errorf("creating array: %w", err)
	}
	return a, nil
}

func newArray(values []bignum.Int, combine Combine, opts []Option) (*Array, error) {
	if combine == nil {
		return nil, errInvalidOption("combine is nil")
	}
	a := &Array{
		capacity:     DefaultCapacity,
		growthFactor: DefaultGrowthFactor,
		maxSize:      bignum.MaxArraySize,
		combine:      combine,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.capacity > a.maxSize {
		return nil, fmt.Errorf("capacity %v is greater than %v: %w", a.capacity, a.maxSize, ErrArraySize)
	}
	c, err := a.fit(len(values))
	if err != nil {
		return nil, err
	}
	data := slices.Clone(values)
	t, err := newTree(data, c, a.combine)
	if err != nil {
		return nil, err
	}
	a.data, a.capacity, a.tree = data, c, t
	a.logger.Debug("built array", "size", len(data), "capacity", c)
	return a, nil
}

// fit returns the smallest capacity reachable by growth that holds n elements.
func (a *Array) fit(n int) (int, error) {
	c := a.capacity
	for c < n {
		if c > a.maxSize/a.growthFactor {
			return 0, fmt.Errorf("capacity %v times %v is greater than %v: %w", c, a.growthFactor, a.maxSize, ErrArraySize)
		}
		c *= a.growthFactor
	}
	return c, nil
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// Cap returns the number of elements the array can hold before it grows.
func (a *Array) Cap() int {
	return a.capacity
}

// Push appends v and returns its index.
// If the array is full, the capacity grows by the growth factor and the tree
// is rebuilt.
//
// Push returns an error if the grown capacity would exceed the maximum size
// or combine fails, in which case the array is unchanged.
func (a *Array) Push(v bignum.Int) (int, error) {
	i := len(a.data)
	if i < a.capacity {
		if err := a.tree.set(i, v); err != nil {
			return 0, fmt.Errorf("pushing %v: %w", v, err)
		}
		a.data = append(a.data, v)
		return i, nil
	}
	c, err := a.fit(i + 1)
	if err != nil {
		return 0, fmt.Errorf("pushing %v: %w", v, err)
	}
	data := append(a.data, v)
	t, err := newTree(data, c, a.combine)
	if err != nil {
		return 0, fmt.Errorf("pushing %v: %w", v, err)
	}
	a.logger.Debug("grew array", "size", len(data), "from", a.capacity, "to", c)
	a.data, a.capacity, a.tree = data, c, t
	return i, nil
}

// Pop removes the last element and returns it.
// The capacity does not shrink.
//
// Pop returns an error if the array is empty or combine fails on the
// remaining elements, in which case the array is unchanged.
// For example, with [Sum] popping -2 from [-2, MaxSafeInteger, 3, -2]
// regroups the remaining sum as (-2 + MaxSafeInteger) + 3, which overflows.
func (a *Array) Pop() (bignum.Int, error) {
	i := len(a.data) - 1
	if i < 0 {
		return bignum.Int{}, fmt.Errorf("popping: %w", ErrEmpty)
	}
	if err := a.tree.remove(i); err != nil {
		return bignum.Int{}, fmt.Errorf("popping: %w", err)
	}
	v := a.data[i]
	a.data[i] = bignum.Int{}
	a.data = a.data[:i]
	return v, nil
}

func (a *Array) checkIndex(i int) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("index %v, length %v: %w", i, len(a.data), ErrIndex)
	}
	return nil
}

func (a *Array) checkRange(start, end int) error {
	if start < 0 || end >= len(a.data) || start > end {
		return fmt.Errorf("range [%v, %v], length %v: %w", start, end, len(a.data), ErrRange)
	}
	return nil
}

// Get returns the element at index i.
//
// Get returns an error if i is out of range.
func (a *Array) Get(i int) (bignum.Int, error) {
	if err := a.checkIndex(i); err != nil {
		return bignum.Int{}, fmt.Errorf("getting element: %w", err)
	}
	return a.data[i], nil
}

// Set replaces the element at index i.
//
// Set returns an error if i is out of range or combine fails,
// in which case the array is unchanged.
func (a *Array) Set(i int, v bignum.Int) error {
	if err := a.checkIndex(i); err != nil {
		return fmt.Errorf("setting element: %w", err)
	}
	if err := a.tree.set(i, v); err != nil {
		return fmt.Errorf("setting element %v to %v: %w", i, v, err)
	}
	a.data[i] = v
	return nil
}

// QueryRange returns the aggregate of the elements in [start, end].
//
// QueryRange returns an error if the range is empty or out of bounds,
// or combine fails.
func (a *Array) QueryRange(start, end int) (bignum.Int, error) {
	if err := a.checkRange(start, end); err != nil {
		return bignum.Int{}, fmt.Errorf("querying range: %w", err)
	}
	z, ok, err := a.tree.query(1, start, end)
	if err != nil {
		return bignum.Int{}, fmt.Errorf("querying range [%v, %v]: %w", start, end, err)
	}
	if !ok {
		return bignum.Int{}, fmt.Errorf("querying range [%v, %v]: %w", start, end, ErrRange)
	}
	return z, nil
}

// SetRange replaces every element in [start, end] with v.
// The tree is updated lazily, so only O(log n) nodes are touched.
//
// SetRange returns an error if the range is empty or out of bounds,
// or combine fails, in which case the array is unchanged.
func (a *Array) SetRange(start, end int, v bignum.Int) error {
	if err := a.checkRange(start, end); err != nil {
		return fmt.Errorf("setting range: %w", err)
	}
	if err := a.tree.assign(start, end, v); err != nil {
		return fmt.Errorf("setting range [%v, %v] to %v: %w", start, end, v, err)
	}
	for i := start; i <= end; i++ {
		a.data[i] = v
	}
	return nil
}

// ToArray returns a copy of the elements.
func (a *Array) ToArray() []bignum.Int {
	return slices.Clone(a.data)
}

// Sort sorts the elements in ascending or descending order and rebuilds the tree.
//
// Sort returns an error if combine fails on the reordered elements,
// in which case the array is unchanged.
func (a *Array) Sort(ascending bool) error {
	data := slices.Clone(a.data)
	slices.SortStableFunc(data, func(x, y bignum.Int) int {
		if ascending {
			return x.Cmp(y)
		}
		return y.Cmp(x)
	})
	t, err := newTree(data, a.capacity, a.combine)
	if err != nil {
		return fmt.Errorf("sorting: %w", err)
	}
	a.logger.Debug("rebuilt array", "size", len(data), "capacity", a.capacity)
	a.data, a.tree = data, t
	return nil
}

// ToHeap returns a heap holding a copy of the elements.
// If isMin is true, the smallest element is on top, otherwise the largest.
func (a *Array) ToHeap(isMin bool) *Heap {
	if isMin {
		return newHeap(a.data, compareAsc)
	}
	return newHeap(a.data, compareDesc)
}
