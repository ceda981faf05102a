package types

import (
	"strings"
	"time"
)

// MaxItemsPerChecklist is the item ceiling enforced on every checklist.
const MaxItemsPerChecklist = 50

type TripType string

const (
	TripTypeBeach         TripType = "Praia"
	TripTypeBusiness      TripType = "Negócios"
	TripTypeInternational TripType = "Internacional"
	TripTypeCamping       TripType = "Camping"
	TripTypeCruise        TripType = "Cruzeiro"
	TripTypeCity          TripType = "Cidade"
	TripTypeOther         TripType = "Outro"
)

// TripTypes lists every accepted trip type in display order.
var TripTypes = []TripType{
	TripTypeBeach,
	TripTypeBusiness,
	TripTypeInternational,
	TripTypeCamping,
	TripTypeCruise,
	TripTypeCity,
	TripTypeOther,
}

func (t TripType) IsValid() bool {
	for _, tt := range TripTypes {
		if t == tt {
			return true
		}
	}
	return false
}

type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "pendente"
	ItemStatusVerified ItemStatus = "verificado"
)

// Toggled returns the opposite status. Pending and Verified are the only states.
func (s ItemStatus) Toggled() ItemStatus {
	if s == ItemStatusVerified {
		return ItemStatusPending
	}
	return ItemStatusVerified
}

type Checklist struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome_checklist"`
	TripType    TripType  `json:"tipo_viagem"`
	Description *string   `json:"descricao"`
	CreatedAt   time.Time `json:"data_criacao"`
	UpdatedAt   time.Time `json:"data_atualizacao"`
}

// SameName reports whether name collides with the checklist name ignoring case.
func (c Checklist) SameName(name string) bool {
	return strings.EqualFold(c.Name, name)
}

type ChecklistItem struct {
	ID          string     `json:"id"`
	ChecklistID string     `json:"checklist_id"`
	Name        string     `json:"nome_item"`
	Note        *string    `json:"observacao"`
	Order       int        `json:"ordem"`
	Status      ItemStatus `json:"status"`
	UpdatedAt   time.Time  `json:"data_atualizacao"`
}

type ChecklistCreate struct {
	Name        string   `json:"nome_checklist" binding:"required,min=3,max=50,checklist_name"`
	TripType    TripType `json:"tipo_viagem" binding:"required,trip_type"`
	Description *string  `json:"descricao" binding:"omitempty,max=200"`
}

type ChecklistUpdate struct {
	Name        string   `json:"nome_checklist" binding:"required,min=3,max=50,checklist_name"`
	TripType    TripType `json:"tipo_viagem" binding:"required,trip_type"`
	Description *string  `json:"descricao" binding:"omitempty,max=200"`
}

type ChecklistItemCreate struct {
	ChecklistID string  `json:"checklist_id" binding:"required,uuid"`
	Name        string  `json:"nome_item" binding:"required,min=2,max=100"`
	Note        *string `json:"observacao" binding:"omitempty,max=200"`
}

type ChecklistItemUpdate struct {
	Name string  `json:"nome_item" binding:"required,min=2,max=100"`
	Note *string `json:"observacao" binding:"omitempty,max=200"`
}

// ChecklistSummary is one row of the checklist listing. Counts are derived
// from the live item list on every call.
type ChecklistSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"nome_checklist"`
	TripType      TripType  `json:"tipo_viagem"`
	Description   *string   `json:"descricao"`
	CreatedAt     time.Time `json:"data_criacao"`
	TotalItems    int       `json:"total_itens"`
	VerifiedItems int       `json:"itens_verificados"`
}

type ChecklistDetail struct {
	Checklist
	Items         []ChecklistItem `json:"itens"`
	TotalItems    int             `json:"total_itens"`
	VerifiedItems int             `json:"itens_verificados"`
	Progress      int             `json:"progresso"`
}

type ChecklistSort string

const (
	SortRecent   ChecklistSort = "recent"
	SortOldest   ChecklistSort = "oldest"
	SortNameAsc  ChecklistSort = "name_asc"
	SortNameDesc ChecklistSort = "name_desc"
)

var sortAliases = map[string]ChecklistSort{
	"mais recentes":    SortRecent,
	"mais antigos":     SortOldest,
	"alfabética (a-z)": SortNameAsc,
	"alfabética (z-a)": SortNameDesc,
}

// ParseChecklistSort accepts the canonical sort names and the labels used by
// the web client. An empty string selects SortRecent.
func ParseChecklistSort(s string) (ChecklistSort, bool) {
	switch ChecklistSort(s) {
	case "":
		return SortRecent, true
	case SortRecent, SortOldest, SortNameAsc, SortNameDesc:
		return ChecklistSort(s), true
	}
	if sort, ok := sortAliases[strings.ToLower(s)]; ok {
		return sort, true
	}
	return "", false
}

// ChecklistListFilter narrows and orders the checklist listing. The zero
// value lists everything newest first.
type ChecklistListFilter struct {
	TripType TripType
	Sort     ChecklistSort
}

// NormalizeText maps absent or empty optional text to nil.
func NormalizeText(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
