// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	regexp "github.com/wasilibs/go-re2"
	"golang.org/x/sync/semaphore"
)

// RegexErrorKind classifies why a pattern was rejected.
type RegexErrorKind int

const (
	RegexTooLong RegexErrorKind = iota + 1
	RegexTooManyQuantifiers
	RegexRepetitionTooLarge
	RegexNestedQuantifier
	RegexQuantifiedAlternation
	RegexSyntax
	RegexTimeout
)

func (k RegexErrorKind) String() string {
	switch k {
	case RegexTooLong:
		return "too_long"
	case RegexTooManyQuantifiers:
		return "too_many_quantifiers"
	case RegexRepetitionTooLarge:
		return "repetition_too_large"
	case RegexNestedQuantifier:
		return "nested_quantifier"
	case RegexQuantifiedAlternation:
		return "quantified_alternation"
	case RegexSyntax:
		return "syntax"
	case RegexTimeout:
		return "timeout"
	}
	return "unknown"
}

// RegexError is returned by [RegexCompiler.Compile] for every rejected
// pattern. It matches [ErrInvalidFilterPattern] under errors.Is.
type RegexError struct {
	Kind    RegexErrorKind
	Pattern string
	Reason  string
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("invalid filter pattern (%s): %s", e.Kind, e.Reason)
}

func (e *RegexError) Is(target error) bool {
	return target == ErrInvalidFilterPattern
}

// safeRegexCompiler compiles and runs name patterns on a bounded pool of
// workers separate from the request goroutines. Static checks reject the
// common catastrophic shapes; the wall-clock budgets are the backstop.
type safeRegexCompiler struct {
	maxLength      int
	maxQuantifiers int
	maxRepetition  int
	compileTimeout time.Duration
	matchTimeout   time.Duration

	pool   *semaphore.Weighted
	logger *logger.Logger
}

// NewSafeRegexCompiler builds a [RegexCompiler] limited by cfg.
func NewSafeRegexCompiler(cfg config.Regex, logger *logger.Logger) RegexCompiler {
	return newSafeRegexCompiler(cfg, logger)
}

func newSafeRegexCompiler(cfg config.Regex, logger *logger.Logger) *safeRegexCompiler {
	c := &safeRegexCompiler{
		maxLength:      orDefault(cfg.MaxLength, 256),
		maxQuantifiers: orDefault(cfg.MaxQuantifiers, 10),
		maxRepetition:  orDefault(cfg.MaxRepetition, 100),
		compileTimeout: cfg.CompileTimeout,
		matchTimeout:   cfg.MatchTimeout,
		pool:           semaphore.NewWeighted(int64(orDefault(cfg.Workers, 4))),
		logger:         logger,
	}
	if c.compileTimeout <= 0 {
		c.compileTimeout = 100 * time.Millisecond
	}
	if c.matchTimeout <= 0 {
		c.matchTimeout = 500 * time.Millisecond
	}

	// the engine initializes lazily; pay that cost here, outside any budget
	_, _ = regexp.Compile("warm")

	return c
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Compile validates pattern and compiles it case-insensitively. An empty
// pattern matches everything and never touches the pool.
func (c *safeRegexCompiler) Compile(ctx context.Context, pattern string) (Matcher, error) {
	if pattern == "" {
		return matchAll{}, nil
	}
	if err := c.check(pattern); err != nil {
		return nil, err
	}

	var (
		re         *regexp.Regexp
		compileErr error
	)
	finished := c.run(ctx, c.compileTimeout, func() {
		re, compileErr = regexp.Compile("(?i)" + pattern)
	})
	if !finished {
		return nil, &RegexError{Kind: RegexTimeout, Pattern: pattern, Reason: "compilation exceeded " + c.compileTimeout.String()}
	}
	if compileErr != nil {
		return nil, &RegexError{Kind: RegexSyntax, Pattern: pattern, Reason: compileErr.Error()}
	}

	return &boundedMatcher{re: re, compiler: c}, nil
}

// run executes fn on the worker pool and reports whether it finished within
// timeout. A late fn keeps its slot until it returns, so runaway work stays
// bounded by the pool size.
func (c *safeRegexCompiler) run(ctx context.Context, timeout time.Duration, fn func()) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if ctx.Err() != nil {
		return false
	}
	if err := c.pool.Acquire(ctx, 1); err != nil {
		return false
	}

	done := make(chan struct{})
	go func() {
		defer c.pool.Release(1)
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				c.logger.Error().Interface("panic", r).Msg("regex worker panicked")
			}
		}()
		fn()
	}()

	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}

// check applies the static rejection rules.
func (c *safeRegexCompiler) check(pattern string) error {
	reject := func(kind RegexErrorKind, reason string) error {
		return &RegexError{Kind: kind, Pattern: pattern, Reason: reason}
	}

	if len(pattern) > c.maxLength {
		return reject(RegexTooLong, fmt.Sprintf("pattern longer than %d characters", c.maxLength))
	}

	type group struct {
		quantified  bool // contains a quantifier
		alternation bool // contains a top-level '|'
	}
	var (
		stack       []group
		quantifiers int
		closed      *group // group closed immediately before position i
		quantified  bool   // a quantifier ends immediately before position i
	)
	markQuantified := func() {
		if len(stack) > 0 {
			stack[len(stack)-1].quantified = true
		}
	}

	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		justClosed := closed
		closed = nil
		afterQuantifier := quantified
		quantified = false

		switch ch {
		case '\\':
			i++ // escaped character is a literal
		case '[':
			i = skipClass(pattern, i)
		case '(':
			stack = append(stack, group{})
			if i+1 < len(pattern) && pattern[i+1] == '?' {
				j := i + 2
				for j < len(pattern) && pattern[j] != ':' && pattern[j] != ')' && pattern[j] != '>' {
					j++
				}
				if j < len(pattern) && pattern[j] == ')' {
					// flag group such as (?i): no body
					stack = stack[:len(stack)-1]
				}
				i = j
			}
		case ')':
			if len(stack) == 0 {
				continue // unbalanced; left for the compiler to report
			}
			g := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if g.quantified {
				markQuantified()
			}
			closed = &g
		case '|':
			if len(stack) > 0 {
				stack[len(stack)-1].alternation = true
			}
		case '?':
			if afterQuantifier {
				continue // lazy suffix such as a+?
			}
			// optional: not counted against maxQuantifiers, but it still
			// repeats whatever it follows
			if justClosed != nil {
				if justClosed.quantified {
					return reject(RegexNestedQuantifier, "optional group contains a quantifier")
				}
				if justClosed.alternation {
					return reject(RegexQuantifiedAlternation, "alternation group is optional")
				}
			}
			markQuantified()
			quantified = true
		case '*', '+', '{':
			upper, unbounded, end, ok := 0, true, i, true
			if ch == '{' {
				upper, unbounded, end, ok = parseRepetition(pattern, i)
				if !ok {
					continue // literal '{'
				}
				if !unbounded && upper > c.maxRepetition {
					return reject(RegexRepetitionTooLarge, fmt.Sprintf("repetition bound %d exceeds %d", upper, c.maxRepetition))
				}
			}
			if ch != '{' || unbounded {
				quantifiers++
				if quantifiers > c.maxQuantifiers {
					return reject(RegexTooManyQuantifiers, fmt.Sprintf("more than %d '*'/'+' quantifiers", c.maxQuantifiers))
				}
			}
			if justClosed != nil {
				if justClosed.quantified {
					return reject(RegexNestedQuantifier, "quantified group contains a quantifier")
				}
				if justClosed.alternation {
					return reject(RegexQuantifiedAlternation, "alternation group is quantified")
				}
			}
			markQuantified()
			quantified = true
			i = end
		}
	}

	return nil
}

// skipClass returns the index of the ']' closing the class opened at i.
func skipClass(p string, i int) int {
	j := i + 1
	if j < len(p) && p[j] == '^' {
		j++
	}
	if j < len(p) && p[j] == ']' {
		j++ // leading ']' is literal
	}
	for ; j < len(p); j++ {
		switch p[j] {
		case '\\':
			j++
		case ']':
			return j
		}
	}
	return len(p) - 1
}

// parseRepetition parses "{m}", "{m,}" or "{m,n}" starting at i. ok is
// false when the brace is not a repetition and therefore a literal.
func parseRepetition(p string, i int) (upper int, unbounded bool, end int, ok bool) {
	j := i + 1
	start := j
	for j < len(p) && p[j] >= '0' && p[j] <= '9' {
		j++
	}
	if j == start || j >= len(p) {
		return 0, false, i, false
	}
	lower, _ := strconv.Atoi(p[start:j])

	switch p[j] {
	case '}':
		return lower, false, j, true
	case ',':
		j++
		numStart := j
		for j < len(p) && p[j] >= '0' && p[j] <= '9' {
			j++
		}
		if j >= len(p) || p[j] != '}' {
			return 0, false, i, false
		}
		if j == numStart {
			return lower, true, j, true
		}
		n, _ := strconv.Atoi(p[numStart:j])
		return n, false, j, true
	}
	return 0, false, i, false
}

// boundedMatcher runs a compiled pattern under the match budget.
type boundedMatcher struct {
	re       *regexp.Regexp
	compiler *safeRegexCompiler
}

func (m *boundedMatcher) Match(ctx context.Context, s string) bool {
	var matched bool
	finished := m.compiler.run(ctx, m.compiler.matchTimeout, func() {
		matched = m.re.MatchString(s)
	})
	if !finished {
		m.compiler.logger.Warn().
			Str("pattern", m.re.String()).
			Int("input_len", len(s)).
			Dur("budget", m.compiler.matchTimeout).
			Msg("regex match timed out, treating as no match")
		return false
	}
	return matched
}

type matchAll struct{}

func (matchAll) Match(context.Context, string) bool { return true }
