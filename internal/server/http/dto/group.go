package dto

// GroupMemberRequest identifies the user whose membership changes.
type GroupMemberRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// UserResponse is the public shape of a user in group listings.
type UserResponse struct {
	ID    int64    `json:"id"`
	Login string   `json:"login"`
	Roles []string `json:"roles"`
}
