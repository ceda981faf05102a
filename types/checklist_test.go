package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripType_IsValid(t *testing.T) {
	for _, tt := range TripTypes {
		assert.True(t, tt.IsValid(), string(tt))
	}
	assert.False(t, TripType("praia").IsValid())
	assert.False(t, TripType("").IsValid())
	assert.False(t, TripType("Todos").IsValid())
}

func TestItemStatus_Toggled(t *testing.T) {
	assert.Equal(t, ItemStatusVerified, ItemStatusPending.Toggled())
	assert.Equal(t, ItemStatusPending, ItemStatusVerified.Toggled())
	assert.Equal(t, ItemStatusPending, ItemStatusPending.Toggled().Toggled())
}

func TestChecklist_SameName(t *testing.T) {
	c := Checklist{Name: "Beach Trip"}
	assert.True(t, c.SameName("beach trip"))
	assert.True(t, c.SameName("BEACH TRIP"))
	assert.False(t, c.SameName("Beach Trip 2"))
}

func TestParseChecklistSort(t *testing.T) {
	tests := []struct {
		in     string
		want   ChecklistSort
		wantOK bool
	}{
		{"", SortRecent, true},
		{"recent", SortRecent, true},
		{"oldest", SortOldest, true},
		{"name_asc", SortNameAsc, true},
		{"name_desc", SortNameDesc, true},
		{"Mais recentes", SortRecent, true},
		{"Mais antigos", SortOldest, true},
		{"Alfabética (A-Z)", SortNameAsc, true},
		{"Alfabética (Z-A)", SortNameDesc, true},
		{"random", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseChecklistSort(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Nil(t, NormalizeText(nil))
	empty := ""
	assert.Nil(t, NormalizeText(&empty))

	v := "note"
	got := NormalizeText(&v)
	require.NotNil(t, got)
	assert.Equal(t, "note", *got)
	v = "changed"
	assert.Equal(t, "note", *got)
}

func TestChecklistDetail_WireFormat(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	detail := ChecklistDetail{
		Checklist: Checklist{
			ID:        "c1",
			Name:      "Beach Trip",
			TripType:  TripTypeBeach,
			CreatedAt: at,
			UpdatedAt: at,
		},
		Items: []ChecklistItem{{
			ID:          "i1",
			ChecklistID: "c1",
			Name:        "Towel",
			Order:       1,
			Status:      ItemStatusVerified,
			UpdatedAt:   at,
		}},
		TotalItems:    1,
		VerifiedItems: 1,
		Progress:      100,
	}

	data, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "c1",
		"nome_checklist": "Beach Trip",
		"tipo_viagem": "Praia",
		"descricao": null,
		"data_criacao": "2026-01-02T03:04:05Z",
		"data_atualizacao": "2026-01-02T03:04:05Z",
		"itens": [{
			"id": "i1",
			"checklist_id": "c1",
			"nome_item": "Towel",
			"observacao": null,
			"ordem": 1,
			"status": "verificado",
			"data_atualizacao": "2026-01-02T03:04:05Z"
		}],
		"total_itens": 1,
		"itens_verificados": 1,
		"progresso": 100
	}`, string(data))
}
