package domain

type Action string

const (
	ActionReviewArtists     Action = "review-artists"
	ActionDeleteArtists     Action = "delete-artists"
	ActionViewAllRecords    Action = "view-all-records"
	ActionManageAllBookings Action = "manage-all-bookings"
	ActionManageOwnBookings Action = "manage-own-bookings"
	ActionCancelOwnBookings Action = "cancel-own-bookings"
	ActionEditOwnProfile    Action = "edit-own-profile"
)

var permissions = map[Role]map[Action]bool{
	RoleAdmin: {
		ActionReviewArtists:     true,
		ActionDeleteArtists:     true,
		ActionViewAllRecords:    true,
		ActionManageAllBookings: true,
	},
	RoleManager: {
		ActionReviewArtists:     true,
		ActionDeleteArtists:     true,
		ActionViewAllRecords:    true,
		ActionManageAllBookings: true,
	},
	RoleArtist: {
		ActionManageOwnBookings: true,
		ActionEditOwnProfile:    true,
	},
	RoleUser: {
		ActionCancelOwnBookings: true,
	},
}

// Can reports whether the role is allowed to perform action.
func (r Role) Can(action Action) bool {
	return permissions[r][action]
}

// Authorize returns ErrForbidden unless the session's role allows action.
func Authorize(s Session, action Action) error {
	if !s.Role.Can(action) {
		return ErrForbidden
	}
	return nil
}
