package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trentd187/sheet-data-api/internal/models"
)

func keys(r *models.Record) []string {
	var out []string
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func TestMaterializeScenario(t *testing.T) {
	headers := models.HeaderRow{"name", "qty", "price"}
	rows := []models.DataRow{
		{"Widget", "3", "2.50"},
		{"Gadget", "", "10"},
	}

	got := Materialize(headers, rows)
	require.Len(t, got, 2)

	for _, record := range got {
		require.Equal(t, []string{"name", "qty", "price"}, keys(record))
	}

	name, _ := got[0].Get("name")
	qty, _ := got[0].Get("qty")
	price, _ := got[0].Get("price")
	require.Equal(t, "Widget", name)
	require.Equal(t, 3.0, qty)
	require.Equal(t, 2.5, price)

	qty, _ = got[1].Get("qty")
	price, _ = got[1].Get("price")
	require.Equal(t, "", qty)
	require.Equal(t, 10.0, price)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	require.JSONEq(t,
		`[{"name":"Widget","qty":3,"price":2.5},{"name":"Gadget","qty":"","price":10}]`,
		string(b))
}

func TestMaterializeShortRow(t *testing.T) {
	got := Materialize(models.HeaderRow{"a", "b", "c"}, []models.DataRow{{"1"}, {}})
	require.Len(t, got, 2)

	for _, record := range got {
		require.Equal(t, 3, record.Len())
	}

	a, _ := got[0].Get("a")
	b, _ := got[0].Get("b")
	c, ok := got[0].Get("c")
	require.Equal(t, 1.0, a)
	require.Equal(t, "", b)
	require.True(t, ok)
	require.Equal(t, "", c)
}

func TestMaterializeIgnoresExtraCells(t *testing.T) {
	got := Materialize(models.HeaderRow{"a"}, []models.DataRow{{"x", "y", "z"}})
	require.Len(t, got, 1)
	require.Equal(t, []string{"a"}, keys(got[0]))
}

func TestMaterializeDuplicateHeaders(t *testing.T) {
	got := Materialize(models.HeaderRow{"id", "name", "id"}, []models.DataRow{{"1", "first", "2"}})
	require.Len(t, got, 1)
	require.Equal(t, []string{"id", "name"}, keys(got[0]))

	id, _ := got[0].Get("id")
	require.Equal(t, 2.0, id)
}

func TestMaterializeEmpty(t *testing.T) {
	require.Empty(t, Materialize(nil, []models.DataRow{{"1", "2"}}))
	require.Empty(t, Materialize(models.HeaderRow{}, []models.DataRow{{"1"}}))
	require.Empty(t, Materialize(models.HeaderRow{"a"}, nil))

	got := Materialize(models.HeaderRow{"a"}, nil)
	require.NotNil(t, got)
}

func TestMaterializePreservesRowCountAndOrder(t *testing.T) {
	headers := models.HeaderRow{"n"}
	var rows []models.DataRow
	for _, s := range []string{"3", "1", "2", "x"} {
		rows = append(rows, models.DataRow{s})
	}

	got := Materialize(headers, rows)
	require.Len(t, got, len(rows))

	var values []any
	for _, record := range got {
		v, _ := record.Get("n")
		values = append(values, v)
	}
	require.Equal(t, []any{3.0, 1.0, 2.0, "x"}, values)
}

func TestFromTable(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		got := FromTable(nil)
		require.NotNil(t, got)
		require.Empty(t, got)

		b, err := json.Marshal(got)
		require.NoError(t, err)
		require.Equal(t, "[]", string(b))
	})

	t.Run("header only", func(t *testing.T) {
		require.Empty(t, FromTable([][]string{{"name", "qty"}}))
	})

	t.Run("rows", func(t *testing.T) {
		got := FromTable([][]string{
			{"name", "qty", "price"},
			{"Widget", "3", "2.50"},
			{"Gadget", "", "10"},
		})
		b, err := json.Marshal(got)
		require.NoError(t, err)
		require.JSONEq(t,
			`[{"name":"Widget","qty":3,"price":2.5},{"name":"Gadget","qty":"","price":10}]`,
			string(b))
	})
}
