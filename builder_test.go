package trellodoc_test

import (
	"testing"

	"github.com/fwojciec/trellodoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMethod(t *testing.T) {
	t.Parallel()

	t.Run("merges documentation and path parameters", func(t *testing.T) {
		t.Parallel()

		raw := &trellodoc.RawMethod{
			Verb: "GET",
			Path: "/boards/[board id]/cards",
			Params: []trellodoc.Param{
				{Name: "fields", Required: true},
			},
		}

		name, m := trellodoc.BuildMethod(raw)

		assert.Equal(t, "getBoardCards", name)
		assert.Equal(t, "GET", m.Method)
		assert.Equal(t, "/boards/:board_id/cards", m.Path)
		assert.Equal(t, []string{"fields", "board_id", "key"}, m.RequiredParams)
		assert.Equal(t, []string{"token"}, m.OptionalParams)
		assert.Empty(t, m.ParamInfos)
	})

	t.Run("optional documentation params stay optional", func(t *testing.T) {
		t.Parallel()

		raw := &trellodoc.RawMethod{
			Verb: "GET",
			Path: "/members/me",
			Params: []trellodoc.Param{
				{Name: "fields", Required: false},
				{Name: "boards", Required: false},
			},
		}

		_, m := trellodoc.BuildMethod(raw)

		assert.Equal(t, []string{"key"}, m.RequiredParams)
		assert.Equal(t, []string{"fields", "boards", "token"}, m.OptionalParams)
	})

	t.Run("path placeholder already required is not duplicated", func(t *testing.T) {
		t.Parallel()

		raw := &trellodoc.RawMethod{
			Verb: "GET",
			Path: "/boards/[board id]",
			Params: []trellodoc.Param{
				{Name: "board_id", Required: true},
			},
		}

		_, m := trellodoc.BuildMethod(raw)

		assert.Equal(t, []string{"board_id", "key"}, m.RequiredParams)
	})

	t.Run("key is appended even when already documented", func(t *testing.T) {
		t.Parallel()

		raw := &trellodoc.RawMethod{
			Verb: "GET",
			Path: "/tokens",
			Params: []trellodoc.Param{
				{Name: "key", Required: true},
			},
		}

		_, m := trellodoc.BuildMethod(raw)

		assert.Equal(t, []string{"key", "key"}, m.RequiredParams)
	})

	t.Run("token already required is not added to optional", func(t *testing.T) {
		t.Parallel()

		raw := &trellodoc.RawMethod{
			Verb: "GET",
			Path: "/tokens/[token]",
			Params: []trellodoc.Param{
				{Name: "token", Required: true},
			},
		}

		_, m := trellodoc.BuildMethod(raw)

		assert.Contains(t, m.RequiredParams, "token")
		assert.NotContains(t, m.OptionalParams, "token")
	})

	t.Run("token already optional is not added twice", func(t *testing.T) {
		t.Parallel()

		raw := &trellodoc.RawMethod{
			Verb: "GET",
			Path: "/members/me",
			Params: []trellodoc.Param{
				{Name: "token", Required: false},
			},
		}

		_, m := trellodoc.BuildMethod(raw)

		assert.Equal(t, []string{"token"}, m.OptionalParams)
	})

	t.Run("param infos only carry parameters with metadata", func(t *testing.T) {
		t.Parallel()

		raw := &trellodoc.RawMethod{
			Verb: "GET",
			Path: "/boards/[board id]",
			Params: []trellodoc.Param{
				{Name: "fields", Required: false},
				{
					Name:     "filter",
					Required: false,
					Info: &trellodoc.ParamInfo{
						DefaultValue: "all",
						ValidValues:  []string{"all", "open", "closed"},
					},
				},
			},
		}

		_, m := trellodoc.BuildMethod(raw)

		require.Len(t, m.ParamInfos, 1)
		require.Contains(t, m.ParamInfos, "filter")
		assert.Equal(t, "all", m.ParamInfos["filter"].DefaultValue)
		assert.Equal(t, []string{"all", "open", "closed"}, m.ParamInfos["filter"].ValidValues)

		// Every param_info key names a merged parameter.
		merged := append(append([]string{}, m.RequiredParams...), m.OptionalParams...)
		for name := range m.ParamInfos {
			assert.Contains(t, merged, name)
		}
	})

	t.Run("collapses initial versioned path prefix", func(t *testing.T) {
		t.Parallel()

		raw := &trellodoc.RawMethod{
			Verb: "PUT",
			Path: "/1/boards/[board id]/name",
		}

		name, _ := trellodoc.BuildMethod(raw)

		assert.Equal(t, "modifyBoardName", name)
	})

	t.Run("uppercases the verb", func(t *testing.T) {
		t.Parallel()

		raw := &trellodoc.RawMethod{Verb: "get", Path: "/boards"}

		_, m := trellodoc.BuildMethod(raw)

		assert.Equal(t, "GET", m.Method)
	})
}
