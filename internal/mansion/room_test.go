package mansion

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomTruncatesLongNames(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short name kept", in: "Cozinha", want: "Cozinha"},
		{name: "exact limit kept", in: strings.Repeat("a", MaxNameLen), want: strings.Repeat("a", MaxNameLen)},
		{name: "over limit cut", in: strings.Repeat("b", MaxNameLen+10), want: strings.Repeat("b", MaxNameLen)},
		{name: "multibyte counted by rune", in: strings.Repeat("ã", 60), want: strings.Repeat("ã", MaxNameLen)},
		{name: "control characters dropped", in: "Sala\x00 de\n Estar", want: "Sala de Estar"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRoom(tt.in)
			assert.Equal(t, tt.want, got.Name)
			assert.LessOrEqual(t, utf8.RuneCountInString(got.Name), MaxNameLen)
			assert.True(t, got.IsLeaf())
		})
	}
}

func TestIsLeaf(t *testing.T) {
	assert.True(t, NewRoom("a").IsLeaf())
	assert.False(t, NewRoom("a").Attach(NewRoom("b"), nil).IsLeaf())
	assert.False(t, NewRoom("a").Attach(nil, NewRoom("c")).IsLeaf())
}

func TestValidate(t *testing.T) {
	t.Run("nil root", func(t *testing.T) {
		require.ErrorIs(t, Validate(nil), ErrNilRoot)
	})

	t.Run("blueprint is a strict tree", func(t *testing.T) {
		require.NoError(t, Validate(Blackwood()))
	})

	t.Run("shared child", func(t *testing.T) {
		shared := NewRoom("shared")
		root := NewRoom("root").Attach(shared, shared)
		err := Validate(root)
		require.ErrorIs(t, err, ErrSharedRoom)
		assert.Contains(t, err.Error(), "shared")
	})

	t.Run("cycle back to root", func(t *testing.T) {
		root := NewRoom("root")
		child := NewRoom("child")
		root.Attach(child, nil)
		child.Attach(nil, root)
		require.ErrorIs(t, Validate(root), ErrSharedRoom)
	})
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, 1, Count(NewRoom("solo")))
	assert.Equal(t, BlackwoodRooms, Count(Blackwood()))
}

func TestReleaseIsPostOrderAndExactlyOnce(t *testing.T) {
	root := Blackwood()
	built := Count(root)

	var order []string
	seen := make(map[*Room]int)
	released := Release(root, func(r *Room) {
		order = append(order, r.Name)
		seen[r]++
		// children are released before their parent
		if r.Left != nil {
			assert.Equal(t, 1, seen[r.Left], "left child of %q not released first", r.Name)
		}
		if r.Right != nil {
			assert.Equal(t, 1, seen[r.Right], "right child of %q not released first", r.Name)
		}
	})

	assert.Equal(t, built, released)
	assert.Len(t, seen, built)
	for r, n := range seen {
		assert.Equal(t, 1, n, "room %q released %d times", r.Name, n)
		assert.True(t, r.IsLeaf(), "room %q still linked after release", r.Name)
	}
	require.NotEmpty(t, order)
	assert.Equal(t, SecretStudy, order[0])
	assert.Equal(t, Hall, order[len(order)-1])
}

func TestReleaseNil(t *testing.T) {
	called := false
	assert.Equal(t, 0, Release(nil, func(*Room) { called = true }))
	assert.False(t, called)
}

func TestBlackwoodShape(t *testing.T) {
	root := Blackwood()
	require.Equal(t, Hall, root.Name)

	living, kitchen := root.Children()
	require.NotNil(t, living)
	require.NotNil(t, kitchen)
	assert.Equal(t, LivingRoom, living.Name)
	assert.Equal(t, Kitchen, kitchen.Name)

	assert.Equal(t, SecretStudy, living.Left.Left.Name)
	assert.Nil(t, living.Left.Right)
	assert.Nil(t, living.Right.Left)
	assert.Equal(t, BackPorch, living.Right.Right.Name)
	assert.Equal(t, DampBasement, kitchen.Left.Left.Name)
	assert.Nil(t, kitchen.Left.Right)
	assert.Equal(t, LuxuryBathroom, kitchen.Right.Left.Name)
	assert.Equal(t, EmptyCloset, kitchen.Right.Right.Name)
}

func TestRoomString(t *testing.T) {
	var r *Room
	assert.Equal(t, "<nil>", r.String())
	assert.Equal(t, "Cozinha", NewRoom("Cozinha").String())
}
