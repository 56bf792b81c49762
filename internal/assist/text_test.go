package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJobDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "crlf", input: "Senior Go Engineer\r\nRemote\r", want: "Senior Go Engineer\nRemote"},
		{name: "collapses spaces", input: "Build   reliable\t\tservices  ", want: "Build reliable services"},
		{name: "blank runs", input: "About us\n\n\n\n\nThe role", want: "About us\n\nThe role"},
		{name: "keeps bullet indent", input: "Requirements:\n  - Go   experience\n  • Kubernetes", want: "Requirements:\n  - Go experience\n  • Kubernetes"},
		{name: "heading", input: "   ## Benefits  ", want: "## Benefits"},
		{name: "plain indent dropped", input: "Intro\n    indented text", want: "Intro\nindented text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJobDescription(tt.input))
		})
	}
}
