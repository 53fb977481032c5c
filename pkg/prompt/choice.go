package prompt

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// choiceLexer splits menu input into a number or words. Anything starting
	// with a non-digit (including "-1") is a word.
	choiceLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Number", Pattern: `\d+`},
		{Name: "Word", Pattern: `[^\s\d]\S*`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	choiceParser = participle.MustBuild[Choice](
		participle.Lexer(choiceLexer),
		participle.Elide("Whitespace"),
	)
)

// Choice is one parsed line of menu input.
type Choice struct {
	Digits *string  `parser:"  @Number"`
	Words  []string `parser:"| @Word+"`
}

// ParseChoice parses menu input. Blank input, a number followed by other
// text, or a number too large for int is an error.
//
// Examples:
//
//	ParseChoice("2")                     // Index: 2
//	ParseChoice("  system  privileges ") // Words: [system privileges]
//	ParseChoice("2 tables")              // error
func ParseChoice(input string) (*Choice, error) {
	choice, err := choiceParser.ParseString("", input)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid input %q", strings.TrimSpace(input))
	}

	if choice.Digits == nil && len(choice.Words) == 0 {
		return nil, errors.New("empty input")
	}

	if choice.Digits != nil {
		if _, err := strconv.Atoi(*choice.Digits); err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", *choice.Digits)
		}
	}

	return choice, nil
}

// Text returns the words joined by single spaces.
func (c *Choice) Text() string {
	return strings.Join(c.Words, " ")
}

// Index returns the number and whether the choice is numeric.
func (c *Choice) Index() (int, bool) {
	if c.Digits == nil {
		return 0, false
	}

	// ParseChoice already rejected values that don't fit in an int.
	n, _ := strconv.Atoi(*c.Digits)
	return n, true
}

// Matches reports whether the choice selects the menu entry at position (1-based)
// with the given names. Names compare case-insensitively.
func (c *Choice) Matches(position int, names ...string) bool {
	if n, ok := c.Index(); ok {
		return n == position
	}

	text := c.Text()
	for _, name := range names {
		if strings.EqualFold(text, name) {
			return true
		}
	}

	return false
}
