package iocli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnPrintfWrite(t *testing.T) {
	var buf bytes.Buffer
	stdio := &Stdio{out: &buf}

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s\n", 1, "abc")
	n, err := stdio.Write([]byte("raw"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "hello world\ntest 1 abc\nraw", buf.String())
}

// withStdin подменяет os.Stdin на pipe с заданным вводом
func withStdin(t *testing.T, input string) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	oldStdin := os.Stdin
	t.Cleanup(func() {
		os.Stdin = oldStdin
		_ = r.Close()
	})
	os.Stdin = r
}

// Тест ReadInput: читаем из pipe вместо os.Stdin
func TestReadInput(t *testing.T) {
	input := "user input\n"
	withStdin(t, input)

	stdio := NewStdio()
	result, err := stdio.ReadInput("Prompt: ")
	assert.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(input), result)
}

// Несколько строк читаются одним reader без потери буфера
func TestReadInput_MultipleLines(t *testing.T) {
	withStdin(t, "first\nsecond\nlast")

	stdio := NewStdio()
	for _, want := range []string{"first", "second", "last"} {
		got, err := stdio.ReadInput("> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := stdio.ReadInput("> ")
	assert.Error(t, err)
}

// Из pipe пароль читается как обычная строка
func TestReadPassword_NonTerminal(t *testing.T) {
	withStdin(t, "secret1\n")

	stdio := NewStdio()
	password, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret1", password)
}
