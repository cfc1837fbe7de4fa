package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaningStatus_ParseSlugAndLabel(t *testing.T) {
	for _, s := range CleaningStatuses() {
		got, ok := ParseCleaningStatus(s.String())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)

		got, ok = ParseCleaningStatus(" " + s.Label() + " ")
		require.True(t, ok, s.Label())
		assert.Equal(t, s, got)
	}
	_, ok := ParseCleaningStatus("sleeping")
	assert.False(t, ok)
	_, ok = ParseCleaningStatus("")
	assert.False(t, ok)
	assert.False(t, StatusUnknown.Valid())
}

func TestCleaningAvailability_Parse(t *testing.T) {
	for _, a := range CleaningAvailabilities() {
		got, ok := ParseCleaningAvailability(a.Label())
		require.True(t, ok, a.Label())
		assert.Equal(t, a, got)
	}
	got, ok := ParseCleaningAvailability("○")
	require.True(t, ok)
	assert.Equal(t, AvailabilityAvailable, got)
}

func TestCleaningAvailability_AllowsCleaning(t *testing.T) {
	assert.True(t, AvailabilityAvailable.AllowsCleaning())
	assert.True(t, AvailabilityStayCleaningAllowed.AllowsCleaning())
	assert.False(t, AvailabilityUnavailable.AllowsCleaning())
	assert.False(t, AvailabilityStayCleaningNotAllowed.AllowsCleaning())
	assert.False(t, AvailabilityUnknown.AllowsCleaning())
}

func TestSetType_DefaultsToNone(t *testing.T) {
	var st SetType
	require.NoError(t, st.Scan(nil))
	assert.Equal(t, SetTypeNone, st)

	v, err := SetTypeUnknown.Value()
	require.NoError(t, err)
	assert.Equal(t, "none", v)

	got, ok := ParseSetType("ソファ・和布団")
	require.True(t, ok)
	assert.Equal(t, SetTypeSofaAndFuton, got)
}

func TestEnums_JSON(t *testing.T) {
	c := Cleaning{
		CleaningDate:         "2024-06-01",
		RoomNumber:           "101",
		CleaningStatus:       StatusBedMaking,
		CleaningAvailability: AvailabilityStayCleaningNotAllowed,
		SetType:              SetTypeFuton,
	}
	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cleaning_date":"2024-06-01","room_number":"101","cleaning_status":"bed-making",
		"cleaning_availability":"consecutive-stay-cleaning-not-allowed","check_in_time":null,
		"guest_count":null,"set_type":"futon","notes":null}`, string(b))

	var back Cleaning
	require.NoError(t, json.Unmarshal([]byte(`{"cleaning_status":"最終チェック","cleaning_availability":"×","set_type":"sofa"}`), &back))
	assert.Equal(t, StatusFinalCheck, back.CleaningStatus)
	assert.Equal(t, AvailabilityUnavailable, back.CleaningAvailability)
	assert.Equal(t, SetTypeSofa, back.SetType)

	assert.Error(t, json.Unmarshal([]byte(`{"cleaning_status":"nap"}`), &back))
}

func TestEnums_ScanAndValue(t *testing.T) {
	var s CleaningStatus
	require.NoError(t, s.Scan([]byte("vacuuming")))
	assert.Equal(t, StatusVacuuming, s)
	assert.Error(t, s.Scan("nap"))
	assert.Error(t, s.Scan(nil))

	_, err := StatusUnknown.Value()
	assert.Error(t, err)
	v, err := StatusFinalCheck.Value()
	require.NoError(t, err)
	assert.Equal(t, "final-check", v)
}
