// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/skilleval/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUserID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldConceptID, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCompleted, v))
}

// EasyScore applies equality check predicate on the "easy_score" field. It's identical to EasyScoreEQ.
func EasyScore(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldEasyScore, v))
}

// MediumScore applies equality check predicate on the "medium_score" field. It's identical to MediumScoreEQ.
func MediumScore(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldMediumScore, v))
}

// HardScore applies equality check predicate on the "hard_score" field. It's identical to HardScoreEQ.
func HardScore(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldHardScore, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTotalScore, v))
}

// Percentage applies equality check predicate on the "percentage" field. It's identical to PercentageEQ.
func Percentage(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldPercentage, v))
}

// Band applies equality check predicate on the "band" field. It's identical to BandEQ.
func Band(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldBand, v))
}

// TimeLimitMinutes applies equality check predicate on the "time_limit_minutes" field. It's identical to TimeLimitMinutesEQ.
func TimeLimitMinutes(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTimeLimitMinutes, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldConceptID, vs...))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCompleted, v))
}

// EasyScoreEQ applies the EQ predicate on the "easy_score" field.
func EasyScoreEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldEasyScore, v))
}

// EasyScoreNEQ applies the NEQ predicate on the "easy_score" field.
func EasyScoreNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldEasyScore, v))
}

// EasyScoreIn applies the In predicate on the "easy_score" field.
func EasyScoreIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldEasyScore, vs...))
}

// EasyScoreNotIn applies the NotIn predicate on the "easy_score" field.
func EasyScoreNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldEasyScore, vs...))
}

// EasyScoreGT applies the GT predicate on the "easy_score" field.
func EasyScoreGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldEasyScore, v))
}

// EasyScoreGTE applies the GTE predicate on the "easy_score" field.
func EasyScoreGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldEasyScore, v))
}

// EasyScoreLT applies the LT predicate on the "easy_score" field.
func EasyScoreLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldEasyScore, v))
}

// EasyScoreLTE applies the LTE predicate on the "easy_score" field.
func EasyScoreLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldEasyScore, v))
}

// MediumScoreEQ applies the EQ predicate on the "medium_score" field.
func MediumScoreEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldMediumScore, v))
}

// MediumScoreNEQ applies the NEQ predicate on the "medium_score" field.
func MediumScoreNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldMediumScore, v))
}

// MediumScoreIn applies the In predicate on the "medium_score" field.
func MediumScoreIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldMediumScore, vs...))
}

// MediumScoreNotIn applies the NotIn predicate on the "medium_score" field.
func MediumScoreNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldMediumScore, vs...))
}

// MediumScoreGT applies the GT predicate on the "medium_score" field.
func MediumScoreGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldMediumScore, v))
}

// MediumScoreGTE applies the GTE predicate on the "medium_score" field.
func MediumScoreGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldMediumScore, v))
}

// MediumScoreLT applies the LT predicate on the "medium_score" field.
func MediumScoreLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldMediumScore, v))
}

// MediumScoreLTE applies the LTE predicate on the "medium_score" field.
func MediumScoreLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldMediumScore, v))
}

// HardScoreEQ applies the EQ predicate on the "hard_score" field.
func HardScoreEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldHardScore, v))
}

// HardScoreNEQ applies the NEQ predicate on the "hard_score" field.
func HardScoreNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldHardScore, v))
}

// HardScoreIn applies the In predicate on the "hard_score" field.
func HardScoreIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldHardScore, vs...))
}

// HardScoreNotIn applies the NotIn predicate on the "hard_score" field.
func HardScoreNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldHardScore, vs...))
}

// HardScoreGT applies the GT predicate on the "hard_score" field.
func HardScoreGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldHardScore, v))
}

// HardScoreGTE applies the GTE predicate on the "hard_score" field.
func HardScoreGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldHardScore, v))
}

// HardScoreLT applies the LT predicate on the "hard_score" field.
func HardScoreLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldHardScore, v))
}

// HardScoreLTE applies the LTE predicate on the "hard_score" field.
func HardScoreLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldHardScore, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldTotalScore, v))
}

// PercentageEQ applies the EQ predicate on the "percentage" field.
func PercentageEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldPercentage, v))
}

// PercentageNEQ applies the NEQ predicate on the "percentage" field.
func PercentageNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldPercentage, v))
}

// PercentageIn applies the In predicate on the "percentage" field.
func PercentageIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldPercentage, vs...))
}

// PercentageNotIn applies the NotIn predicate on the "percentage" field.
func PercentageNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldPercentage, vs...))
}

// PercentageGT applies the GT predicate on the "percentage" field.
func PercentageGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldPercentage, v))
}

// PercentageGTE applies the GTE predicate on the "percentage" field.
func PercentageGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldPercentage, v))
}

// PercentageLT applies the LT predicate on the "percentage" field.
func PercentageLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldPercentage, v))
}

// PercentageLTE applies the LTE predicate on the "percentage" field.
func PercentageLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldPercentage, v))
}

// BandEQ applies the EQ predicate on the "band" field.
func BandEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldBand, v))
}

// BandNEQ applies the NEQ predicate on the "band" field.
func BandNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldBand, v))
}

// BandIn applies the In predicate on the "band" field.
func BandIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldBand, vs...))
}

// BandNotIn applies the NotIn predicate on the "band" field.
func BandNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldBand, vs...))
}

// BandGT applies the GT predicate on the "band" field.
func BandGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldBand, v))
}

// BandGTE applies the GTE predicate on the "band" field.
func BandGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldBand, v))
}

// BandLT applies the LT predicate on the "band" field.
func BandLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldBand, v))
}

// BandLTE applies the LTE predicate on the "band" field.
func BandLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldBand, v))
}

// BandContains applies the Contains predicate on the "band" field.
func BandContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldBand, v))
}

// BandHasPrefix applies the HasPrefix predicate on the "band" field.
func BandHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldBand, v))
}

// BandHasSuffix applies the HasSuffix predicate on the "band" field.
func BandHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldBand, v))
}

// BandEqualFold applies the EqualFold predicate on the "band" field.
func BandEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldBand, v))
}

// BandContainsFold applies the ContainsFold predicate on the "band" field.
func BandContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldBand, v))
}

// WeakAreasIsNil applies the IsNil predicate on the "weak_areas" field.
func WeakAreasIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldWeakAreas))
}

// WeakAreasNotNil applies the NotNil predicate on the "weak_areas" field.
func WeakAreasNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldWeakAreas))
}

// TimeLimitMinutesEQ applies the EQ predicate on the "time_limit_minutes" field.
func TimeLimitMinutesEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesNEQ applies the NEQ predicate on the "time_limit_minutes" field.
func TimeLimitMinutesNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesIn applies the In predicate on the "time_limit_minutes" field.
func TimeLimitMinutesIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldTimeLimitMinutes, vs...))
}

// TimeLimitMinutesNotIn applies the NotIn predicate on the "time_limit_minutes" field.
func TimeLimitMinutesNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldTimeLimitMinutes, vs...))
}

// TimeLimitMinutesGT applies the GT predicate on the "time_limit_minutes" field.
func TimeLimitMinutesGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesGTE applies the GTE predicate on the "time_limit_minutes" field.
func TimeLimitMinutesGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesLT applies the LT predicate on the "time_limit_minutes" field.
func TimeLimitMinutesLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesLTE applies the LTE predicate on the "time_limit_minutes" field.
func TimeLimitMinutesLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldTimeLimitMinutes, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldCompletedAt))
}

// HasConcept applies the HasEdge predicate on the "concept" edge.
func HasConcept() predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConceptTable, ConceptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConceptWith applies the HasEdge predicate on the "concept" edge with a given conditions (other predicates).
func HasConceptWith(preds ...predicate.Concept) predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := newConceptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
