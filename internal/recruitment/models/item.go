package models

import (
	"sort"
	"strings"

	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
)

// RecruitmentItem is one question of a recruitment's application form.
type RecruitmentItem struct {
	ID            id.RecruitmentItemID `json:"id"`
	RecruitmentID id.RecruitmentID     `json:"recruitment_id"`
	Title         string               `json:"title"`
	Position      int                  `json:"position"`
	MaximumLength int                  `json:"maximum_length"`
	Description   string               `json:"description"`
}

func NewRecruitmentItem(
	itemID id.RecruitmentItemID,
	recruitmentID id.RecruitmentID,
	title string,
	position int,
	maximumLength int,
	description string,
) (*RecruitmentItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recruitment item title cannot be empty")
	}
	if position < 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recruitment item position cannot be negative")
	}
	if maximumLength <= 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "recruitment item maximum length must be positive")
	}
	return &RecruitmentItem{
		ID:            itemID,
		RecruitmentID: recruitmentID,
		Title:         title,
		Position:      position,
		MaximumLength: maximumLength,
		Description:   strings.TrimSpace(description),
	}, nil
}

// Catalog is the ordered question set of one recruitment, looked up by item id.
type Catalog struct {
	items []RecruitmentItem
	index map[id.RecruitmentItemID]int
}

// NewCatalog orders items by position. Positions and ids must be unique.
func NewCatalog(items []RecruitmentItem) (Catalog, error) {
	sorted := make([]RecruitmentItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	index := make(map[id.RecruitmentItemID]int, len(sorted))
	for i, item := range sorted {
		if i > 0 && sorted[i-1].Position == item.Position {
			return Catalog{}, dErrors.New(dErrors.CodeInvariantViolation, "recruitment item positions must be unique")
		}
		if _, dup := index[item.ID]; dup {
			return Catalog{}, dErrors.New(dErrors.CodeInvariantViolation, "recruitment item ids must be unique")
		}
		index[item.ID] = i
	}
	return Catalog{items: sorted, index: index}, nil
}

// Items returns the questions in position order.
func (c Catalog) Items() []RecruitmentItem {
	out := make([]RecruitmentItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c Catalog) Len() int { return len(c.items) }

func (c Catalog) Lookup(itemID id.RecruitmentItemID) (RecruitmentItem, bool) {
	i, ok := c.index[itemID]
	if !ok {
		return RecruitmentItem{}, false
	}
	return c.items[i], true
}
