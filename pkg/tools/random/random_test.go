package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	n := 10
	str := String(n)

	require.IsType(t, "", str)
	require.Len(t, str, n)
}

func TestEmail(t *testing.T) {
	email := Email()

	require.IsType(t, "", email)
	require.Contains(t, email, "@")
}

func TestStringSlice(t *testing.T) {
	n := 5
	ss := StringSlice(n)

	require.IsType(t, []string{}, ss)
	require.Len(t, ss, n)
}

func TestInt(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := Int(5, 60)
		require.GreaterOrEqual(t, n, 5)
		require.LessOrEqual(t, n, 60)
	}
}

func TestFloat(t *testing.T) {
	for i := 0; i < 100; i++ {
		f := Float(0.5, 100)
		require.GreaterOrEqual(t, f, 0.5)
		require.Less(t, f, 100.0)
	}
}
