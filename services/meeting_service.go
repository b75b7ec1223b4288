package services

import (
	"log"
	"time"
)

// CreateTeamsMeeting is a placeholder for the Microsoft Graph integration.
// It returns a dummy join URL until the Graph API call is wired in.
func CreateTeamsMeeting(subject string, startTime time.Time) string {
	log.Printf("createTeamsMeeting placeholder called for %q at %s", subject, startTime.Format(time.RFC3339))
	return "https://teams.microsoft.com/l/meetup-join/dummy-meeting-url"
}
