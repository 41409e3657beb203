package upstream

import "context"

type fcmTokenRequest struct {
	FCMToken string `json:"fcmToken"`
	UserID   string `json:"userId"`
	UserType string `json:"userType"`
}

// RegisterFCMToken forwards a minted device token to the backend so push
// delivery can target this user.
func (c *Client) RegisterFCMToken(ctx context.Context, token, userID, userType string) error {
	body := fcmTokenRequest{
		FCMToken: token,
		UserID:   userID,
		UserType: userType,
	}
	return c.do(ctx, "POST", "/api/fcm-token", nil, body, nil)
}
