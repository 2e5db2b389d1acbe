package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	svc := NewAccountService(openTestDB(t))

	require.NoError(t, svc.Register("Ann", "A@x.com ", "pw123", "", 0))

	user, err := svc.FindUserByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email, "email must be stored normalized")
	assert.Equal(t, "Ann", user.Name)
	assert.NotEqual(t, "pw123", user.Password, "password must never be stored in plaintext")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewAccountService(openTestDB(t))

	require.NoError(t, svc.Register("Ann", "a@x.com", "pw123", "", 0))

	// different casing still collides on the normalized key
	err := svc.Register("Other", "A@X.COM", "pw456", "", 0)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewAccountService(openTestDB(t))

	err := svc.Register("Ann", "a@x.com", "pw1", "", 0)
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.FindUserByEmail("a@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegister_DefaultGoal(t *testing.T) {
	svc := NewAccountService(openTestDB(t))

	require.NoError(t, svc.Register("Ann", "a@x.com", "pw123", "", 0))

	goal, err := svc.GetGoal("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, DefaultGoalCalories, goal.Calories)
	assert.Equal(t, DefaultGoalProtein, goal.Protein)
	assert.Equal(t, DefaultGoalCarbs, goal.Carbs)
	assert.Equal(t, DefaultGoalFats, goal.Fats)
}

func TestAuthenticate(t *testing.T) {
	svc := NewAccountService(openTestDB(t))
	require.NoError(t, svc.Register("Ann", "a@x.com", "pw123", "", 0))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "correct credentials", email: "a@x.com", password: "pw123"},
		{name: "case-insensitive email", email: "A@x.com", password: "pw123"},
		{name: "wrong password", email: "a@x.com", password: "pw124", wantErr: ErrInvalidCredentials},
		{name: "near-miss password", email: "a@x.com", password: "pw123 ", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "b@x.com", password: "pw123", wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a@x.com", user.Email)
		})
	}
}

func TestSetGoal(t *testing.T) {
	svc := NewAccountService(openTestDB(t))
	require.NoError(t, svc.Register("Ann", "a@x.com", "pw123", "", 0))

	goal, err := svc.SetGoal("a@x.com", 2200, 120, 260, 80)
	require.NoError(t, err)
	assert.Equal(t, 2200, goal.Calories)
	assert.Equal(t, 120.0, goal.Protein)
	assert.Equal(t, 260.0, goal.Carbs)
	assert.Equal(t, 80.0, goal.Fats)

	// full replace, nothing merged from the previous goal
	goal, err = svc.SetGoal("a@x.com", 1800, 90, 200, 60)
	require.NoError(t, err)
	assert.Equal(t, 1800, goal.Calories)
	assert.Equal(t, 90.0, goal.Protein)
}

func TestSetGoal_RejectsNonPositive(t *testing.T) {
	svc := NewAccountService(openTestDB(t))
	require.NoError(t, svc.Register("Ann", "a@x.com", "pw123", "", 0))
	_, err := svc.SetGoal("a@x.com", 2200, 120, 260, 80)
	require.NoError(t, err)

	tests := []struct {
		name     string
		calories int
		protein  float64
		carbs    float64
		fats     float64
	}{
		{"zero calories", 0, 120, 260, 80},
		{"negative protein", 2200, -1, 260, 80},
		{"zero carbs", 2200, 120, 0, 80},
		{"negative fats", 2200, 120, 260, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetGoal("a@x.com", tt.calories, tt.protein, tt.carbs, tt.fats)
			assert.ErrorIs(t, err, ErrInvalidGoal)

			// stored goal must be untouched
			goal, err := svc.GetGoal("a@x.com")
			require.NoError(t, err)
			assert.Equal(t, 2200, goal.Calories)
			assert.Equal(t, 120.0, goal.Protein)
			assert.Equal(t, 260.0, goal.Carbs)
			assert.Equal(t, 80.0, goal.Fats)
		})
	}
}

func TestSetGoal_UnknownAccount(t *testing.T) {
	svc := NewAccountService(openTestDB(t))

	_, err := svc.SetGoal("nobody@x.com", 2000, 100, 250, 70)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCalibration(t *testing.T) {
	svc := NewAccountService(openTestDB(t))
	require.NoError(t, svc.Register("Ann", "a@x.com", "pw123", "", 0))

	calib, err := svc.Calibration("a@x.com")
	require.NoError(t, err)
	assert.Nil(t, calib, "uncalibrated account returns nil")

	set, err := svc.SetCalibration("a@x.com", 0.8, 1.0, 1.4)
	require.NoError(t, err)
	assert.Equal(t, 1.4, set.Large)

	calib, err = svc.Calibration("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, calib)
	assert.Equal(t, 0.8, calib.Small)
	assert.Equal(t, 1.0, calib.Medium)

	// upsert overwrites in place
	_, err = svc.SetCalibration("a@x.com", 0.9, 1.1, 1.5)
	require.NoError(t, err)
	calib, err = svc.Calibration("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 0.9, calib.Small)
	assert.Equal(t, 1.5, calib.Large)

	_, err = svc.SetCalibration("nobody@x.com", 1, 1, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc := NewAccountService(openTestDB(t))
	require.NoError(t, svc.Register("Ann", "a@x.com", "pw123", "medium", 60))

	require.NoError(t, svc.UpdateProfile("a@x.com", "", "large", 58))

	profile, err := svc.Profile("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", profile["name"], "empty fields are not overwritten")
	assert.Equal(t, "large", profile["bowl_size"])
	assert.Equal(t, 58.0, profile["target_weight"])
}
