package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type treeTest struct {
	in       string
	expected string
	errors   string
}

// parseTests reads html5lib-style test blocks:
//
//	#data
//	<input>
//	#document
//	| <tree dump>
//
// or, for input that must be rejected, "#errors" followed by the message.
func parseTests(t *testing.T, path string) []treeTest {
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	tests := strings.Split(string(data), "#data\n")
	var treeTests []treeTest
	for i, test := range tests {
		if i == 0 {
			continue
		}
		var (
			tt      treeTest
			section = "#data"
			in      []string
			out     []string
		)
		for _, line := range strings.Split(strings.TrimRight(test, "\n"), "\n") {
			if line == "#document" || line == "#errors" {
				section = line
				continue
			}
			if section == "#data" {
				in = append(in, line)
			} else {
				out = append(out, line)
			}
		}
		tt.in = strings.Join(in, "\n")
		if section == "#errors" {
			tt.errors = strings.Join(out, "\n")
		} else {
			tt.expected = strings.Join(out, "\n")
		}
		treeTests = append(treeTests, tt)
	}

	return treeTests
}

func TestTreeConstructor(t *testing.T) {
	tests := parseTests(t, "testdata/fragments.dat")
	require.NotEmpty(t, tests)
	for _, test := range tests {
		runTreeConstructorTest(test, t)
	}
}

func runTreeConstructorTest(test treeTest, t *testing.T) {
	t.Run(test.in, func(t *testing.T) {
		t.Parallel()
		node, err := ParseFragment(test.in, nil)
		if test.errors != "" {
			assert.Nil(t, node)
			assert.Equal(t, test.errors, parseErrorMessage(t, err))
			return
		}
		require.NoError(t, err)
		if s := Dump(node); s != test.expected {
			t.Errorf("Wrong tree. Expected: \n\n%s\nGot: \n\n%s", test.expected, s)
		}
	})
}
