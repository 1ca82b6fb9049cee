package customers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	c := Customer{
		Name:     "ヤマダ運送",
		Code:     strPtr("C000012"),
		Kana:     strPtr("ヤマダウンソウ"),
		Phone:    strPtr("03-1234-5678"),
		Address1: strPtr("東京都大田区"),
		Address2: strPtr("Bldg 2F"),
	}

	tests := []struct {
		q    string
		want bool
	}{
		{q: "", want: true},
		{q: "ﾔﾏﾀﾞ", want: true},
		{q: "c000012", want: true},
		{q: "1234", want: true},
		{q: "大田", want: true},
		{q: "bldg", want: true},
		{q: "ＢＬＤＧ", want: true},
		{q: "佐藤", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(c, tt.q))
		})
	}
}

func TestMatchesSkipsNilFields(t *testing.T) {
	assert.False(t, Matches(Customer{Name: "A"}, "03"))
}

func TestFilterPreservesOrder(t *testing.T) {
	list := []Customer{{ID: 3, Name: "東京急便"}, {ID: 2, Name: "大阪便"}, {ID: 1, Name: "東京運輸"}}

	got := Filter(list, "東京")

	if assert.Len(t, got, 2) {
		assert.Equal(t, int64(3), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
	}
	assert.Len(t, Filter(list, "  "), 3)
}
