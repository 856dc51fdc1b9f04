package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDependencyList(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		expected ListMode
	}{
		{
			name:     "discrete versions",
			entries:  []string{"1.19", "1.19.1", "1.19.2"},
			expected: ListAny,
		},
		{
			name:     "single discrete version",
			entries:  []string{"1.20.1"},
			expected: ListAny,
		},
		{
			name:     "split range",
			entries:  []string{">=1.19", "<1.21"},
			expected: ListAll,
		},
		{
			name:     "one range entry flips the whole list",
			entries:  []string{"1.19", ">=1.19.2"},
			expected: ListAll,
		},
		{
			name:     "star counts as range syntax",
			entries:  []string{"*"},
			expected: ListAll,
		},
		{
			name:     "caret counts as range syntax",
			entries:  []string{"^1.19"},
			expected: ListAll,
		},
		{
			name:     "interior space counts as range syntax",
			entries:  []string{">=1.19 <1.21"},
			expected: ListAll,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ClassifyDependencyList(test.entries))
		})
	}
}

func TestEvaluateDependencyList(t *testing.T) {
	tests := []struct {
		name          string
		entries       []string
		target        string
		relaxed       bool
		satisfied     bool
		indeterminate bool
	}{
		{
			name:      "discrete list any match",
			entries:   []string{"1.19", "1.19.1", "1.19.2"},
			target:    "1.19.2",
			satisfied: true,
		},
		{
			name:      "discrete list no match",
			entries:   []string{"1.18.2", "1.19.2"},
			target:    "1.20.1",
			satisfied: false,
		},
		{
			name:      "split range all must hold",
			entries:   []string{">=1.19", "<1.21"},
			target:    "1.20.1",
			satisfied: true,
		},
		{
			name:      "split range violated",
			entries:   []string{">=1.19", "<1.21"},
			target:    "1.21.0",
			satisfied: false,
		},
		{
			name:      "relaxed accepts major minor entry",
			entries:   []string{"1.20"},
			target:    "1.20.1",
			relaxed:   true,
			satisfied: true,
		},
		{
			name:      "strict discrete entry still prefix matches",
			entries:   []string{"1.20"},
			target:    "1.20.1",
			satisfied: true,
		},
		{
			name:          "empty list is indeterminate",
			entries:       nil,
			target:        "1.20.1",
			indeterminate: true,
		},
		{
			name:          "indeterminate entry poisons conjunction",
			entries:       []string{">=1.19", ">=1.20.x"},
			target:        "1.20.1",
			indeterminate: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := EvaluateDependencyList(test.entries, NewVersion(test.target), test.relaxed)
			if test.indeterminate {
				assert.ErrorIs(t, err, ErrIndeterminate)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.satisfied, actual)
		})
	}
}

func TestCompatibleWith(t *testing.T) {
	target := NewVersion("1.20.1")
	assert.True(t, CompatibleWith(target, []string{"1.19.2", "1.20.1"}, false))
	assert.False(t, CompatibleWith(target, []string{"1.20"}, false))
	assert.True(t, CompatibleWith(target, []string{"1.20"}, true))
	assert.True(t, CompatibleWith(target, []string{"1.20.4"}, true))
	assert.False(t, CompatibleWith(target, []string{"1.19"}, true))
	assert.False(t, CompatibleWith(target, nil, true))
}
