package common

// Keys of the records kept in the local key/value store.
const (
	SessionKey  = "foorum_auth_user"
	PostsKey    = "foorum_posts"
	ClientIDKey = "foorum_client_id"
)
