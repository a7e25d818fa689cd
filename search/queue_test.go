package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

func TestMinQueue_OrderAndStableTies(t *testing.T) {
	var q search.MinQueue[string]
	q.Push(5, "e")
	q.Push(1, "a1")
	q.Push(3, "c")
	q.Push(1, "a2")
	q.Push(0, "z")
	q.Push(1, "a3")
	require.Equal(t, 6, q.Len())

	var got []string
	var keys []int64
	for q.Len() > 0 {
		k, v := q.Pop()
		keys = append(keys, k)
		got = append(got, v)
	}
	require.Equal(t, []string{"z", "a1", "a2", "a3", "c", "e"}, got)
	require.Equal(t, []int64{0, 1, 1, 1, 3, 5}, keys)
}

func TestMinQueue_InterleavedPushPop(t *testing.T) {
	var q search.MinQueue[int]
	q.Push(2, 20)
	q.Push(2, 21)
	_, v := q.Pop()
	require.Equal(t, 20, v)
	q.Push(2, 22)
	q.Push(1, 10)
	_, v = q.Pop()
	require.Equal(t, 10, v)
	_, v = q.Pop()
	require.Equal(t, 21, v)
	_, v = q.Pop()
	require.Equal(t, 22, v)
	require.Zero(t, q.Len())
}
