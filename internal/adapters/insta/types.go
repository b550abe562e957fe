package insta

// --- Login ---
type loginDTO struct {
	LoggedInUser struct {
		PK       string `json:"pk_id"`
		Username string `json:"username"`
	} `json:"logged_in_user"`
	Token  string `json:"token"`
	Status string `json:"status"`
}

// --- Direct threads ---
type threadDTO struct {
	Thread struct {
		ThreadID string `json:"thread_id"`
		Items    []struct {
			ItemID    string `json:"item_id"`
			ItemType  string `json:"item_type"`
			Text      string `json:"text"`
			UserID    string `json:"user_id"`
			Timestamp int64  `json:"timestamp"` // microsegundos
		} `json:"items"`
		Users []struct {
			PK       string `json:"pk"`
			Username string `json:"username"`
		} `json:"users"`
	} `json:"thread"`
}

// --- Users ---
type userInfoDTO struct {
	User struct {
		PK       string `json:"pk"`
		Username string `json:"username"`
	} `json:"user"`
}
