package payload

import (
	"strconv"
	"time"
)

const (
	// RandomStringLength is the length of every generated random string.
	RandomStringLength = 10
	// ActionsPerUser is the length of Activity.Actions.
	ActionsPerUser = 20
	// DefaultFontSize is the font size every generated user gets.
	DefaultFontSize = 14.0
)

// UserData is the flat user record built by Generator.User.
type UserData struct {
	ID       int
	Name     string
	Profile  Profile
	Settings Settings
	Activity Activity
}

// Profile holds a user's contact details.
type Profile struct {
	Email   string
	Phone   string
	Address Address
}

// Address is the postal part of a Profile.
type Address struct {
	Street  string
	City    string
	ZipCode string
}

// Settings holds a user's application settings.
type Settings struct {
	NotificationsEnabled bool
	Theme                string
	Preferences          Preferences
}

// Preferences holds display preferences.
type Preferences struct {
	Language string
	FontSize float64
	Layout   string
}

// Activity records the last login and recent actions.
type Activity struct {
	LastLogin time.Time
	Actions   []string
}

// User builds a flat user record for id. Duplicate ids are fine.
// The actions list repeats a single random draw.
func (g *Generator) User(id int) UserData {
	idStr := strconv.Itoa(id)

	actions := make([]string, ActionsPerUser)
	action := g.randomString()
	for i := range actions {
		actions[i] = action
	}

	return UserData{
		ID:   id,
		Name: "User " + idStr,
		Profile: Profile{
			Email: "user" + idStr + "@example.com",
			Phone: g.randomString(),
			Address: Address{
				Street:  g.randomString(),
				City:    g.randomString(),
				ZipCode: g.randomString(),
			},
		},
		Settings: Settings{
			NotificationsEnabled: true,
			Theme:                g.randomString(),
			Preferences: Preferences{
				Language: g.randomString(),
				FontSize: DefaultFontSize,
				Layout:   g.randomString(),
			},
		},
		Activity: Activity{
			LastLogin: g.now(),
			Actions:   actions,
		},
	}
}
