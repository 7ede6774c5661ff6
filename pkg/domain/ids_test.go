package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "apply/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseApplicantID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseApplicantID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseRecruitmentID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseApplicantID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, ApplicantID(validUUID), id)
	})
}

func TestParseID_HostileInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE application_forms;--", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},
		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseApplicationFormID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTypedIDs_JSONText(t *testing.T) {
	raw := uuid.New()
	payload := struct {
		Item RecruitmentItemID `json:"recruitment_item_id"`
	}{Item: RecruitmentItemID(raw)}

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"recruitment_item_id":"`+raw.String()+`"}`, string(b))

	var decoded struct {
		Item RecruitmentItemID `json:"recruitment_item_id"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, payload.Item, decoded.Item)
}

func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	validUUID := uuid.New().String()

	_, errApplicant := ParseApplicantID(validUUID)
	_, errRecruitment := ParseRecruitmentID(validUUID)
	_, errItem := ParseRecruitmentItemID(validUUID)
	_, errForm := ParseApplicationFormID(validUUID)
	_, errTerm := ParseTermID(validUUID)
	_, errEvaluation := ParseEvaluationID(validUUID)
	_, errMission := ParseMissionID(validUUID)
	require.NoError(t, errApplicant)
	require.NoError(t, errRecruitment)
	require.NoError(t, errItem)
	require.NoError(t, errForm)
	require.NoError(t, errTerm)
	require.NoError(t, errEvaluation)
	require.NoError(t, errMission)

	for _, input := range []string{"", "invalid", uuid.Nil.String()} {
		t.Run("all reject: "+input, func(t *testing.T) {
			_, errApplicant := ParseApplicantID(input)
			_, errRecruitment := ParseRecruitmentID(input)
			_, errItem := ParseRecruitmentItemID(input)
			_, errForm := ParseApplicationFormID(input)
			_, errTerm := ParseTermID(input)
			_, errEvaluation := ParseEvaluationID(input)
			_, errMission := ParseMissionID(input)
			require.Error(t, errApplicant)
			require.Error(t, errRecruitment)
			require.Error(t, errItem)
			require.Error(t, errForm)
			require.Error(t, errTerm)
			require.Error(t, errEvaluation)
			require.Error(t, errMission)
		})
	}
}
