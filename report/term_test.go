package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorEnv(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"empty", nil, true},
		{"xterm", map[string]string{"TERM": "xterm-256color"}, true},
		{"no color", map[string]string{"NO_COLOR": "", "CLICOLOR_FORCE": "1"}, false},
		{"forced", map[string]string{"CLICOLOR_FORCE": "1", "TERM": "dumb"}, true},
		{"force off falls through", map[string]string{"CLICOLOR_FORCE": "0", "TERM": "linux"}, false},
		{"clicolor on", map[string]string{"CLICOLOR": "1", "TERM": "linux"}, true},
		{"clicolor off", map[string]string{"CLICOLOR": "0"}, false},
		{"dumb", map[string]string{"TERM": "dumb"}, false},
		{"unknown", map[string]string{"TERM": "unknown"}, false},
		{"linux console", map[string]string{"TERM": "linux"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				v, ok := tc.env[key]
				return v, ok
			}
			assert.Equal(t, tc.want, colorEnv(lookup))
		})
	}
}
