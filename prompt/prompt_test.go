package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmAnswers(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"\n", true},
		{"", true},
		{"y\n", true},
		{"yes\n", true},
		{"whatever\n", true},
		{"n\n", false},
		{"N\n", false},
		{"no\n", false},
		{"  No  \r\n", false},
		{"nope\n", true},
	}
	for _, c := range cases {
		var out bytes.Buffer
		p := New(strings.NewReader(c.in), &out)
		got, err := p.Confirm("install mods?")
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
		assert.Equal(t, "install mods? (Y/n)? ", out.String())
	}
}

func TestConfirmConsumesOneLinePerPrompt(t *testing.T) {
	p := New(strings.NewReader("n\ny\nno\n"), nil)
	var got []bool
	for i := 0; i < 4; i++ {
		ok, err := p.Confirm("continue?")
		require.NoError(t, err)
		got = append(got, ok)
	}
	assert.Equal(t, []bool{false, true, false, true}, got)
}

func TestConfirmYes(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("n\n"), &out)
	p.Yes = true

	ok, err := p.Confirm("install mods?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, out.String())
}

func TestConfirmReadError(t *testing.T) {
	boom := errors.New("boom")
	p := New(iotest.ErrReader(boom), nil)

	ok, err := p.Confirm("install mods?")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, boom))
}
