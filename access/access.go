// Package access decides whether the caller may touch a resource.
//
// Every handler runs the same check before its database operation: the
// caller must be authenticated, and the project in the path must be owned
// by the caller. Chats are never checked against the caller directly; they
// are reachable only through a project the caller owns. A resource that
// exists under another owner is reported exactly like one that does not
// exist.
package access

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Kind is the resource type named by a request path.
type Kind int

const (
	KindProject Kind = iota + 1
	KindChat
)

// Outcome is the tagged result of an access check.
type Outcome int

const (
	Found Outcome = iota
	Unauthenticated
	ProjectNotFound
	ChatNotFound
)

const (
	MsgUnauthorized    = "Unauthorized"
	MsgProjectNotFound = "Project not found"
	MsgChatNotFound    = "Chat not found"
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Unauthenticated:
		return "unauthenticated"
	case ProjectNotFound:
		return "project_not_found"
	case ChatNotFound:
		return "chat_not_found"
	default:
		return "unknown"
	}
}

// Checker is the read side of the data service that access needs.
// Both methods are pure reads filtered by a compound key.
type Checker interface {
	ProjectOwned(ctx context.Context, projectID uuid.UUID, userID string) (bool, error)
	ChatInProject(ctx context.Context, chatID, projectID uuid.UUID) (bool, error)
}

// Target identifies a resource by its id chain, as it appears in the path.
type Target struct {
	Kind      Kind
	ProjectID string
	ChatID    string
}

// Result carries the outcome and, when Found, the parsed ids.
// Err holds the database error, if any, that turned into a not-found
// outcome; it is for logs only and is never sent to the client.
type Result struct {
	Outcome   Outcome
	UserID    string
	ProjectID uuid.UUID
	ChatID    uuid.UUID
	Err       error
}

// Status maps the outcome to an HTTP status code.
func (r Result) Status() int {
	switch r.Outcome {
	case Found:
		return http.StatusOK
	case Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusNotFound
	}
}

// Message is the client-facing error text for a denied outcome.
func (r Result) Message() string {
	switch r.Outcome {
	case Unauthenticated:
		return MsgUnauthorized
	case ProjectNotFound:
		return MsgProjectNotFound
	case ChatNotFound:
		return MsgChatNotFound
	default:
		return ""
	}
}

// Resolve runs the ownership check for target on behalf of userID.
// The project is always checked first; the chat lookup only happens once
// the project is known to belong to the caller. Ids that are not UUIDs
// cannot name a row and resolve to not-found without a query.
func Resolve(ctx context.Context, checker Checker, userID string, target Target) Result {
	if userID == "" {
		return Result{Outcome: Unauthenticated}
	}

	res := Result{UserID: userID, Outcome: ProjectNotFound}

	projectID, err := uuid.Parse(target.ProjectID)
	if err != nil {
		return res
	}

	owned, err := checker.ProjectOwned(ctx, projectID, userID)
	if err != nil || !owned {
		res.Err = err
		return res
	}
	res.ProjectID = projectID

	if target.Kind != KindChat {
		res.Outcome = Found
		return res
	}

	res.Outcome = ChatNotFound

	chatID, err := uuid.Parse(target.ChatID)
	if err != nil {
		return res
	}

	found, err := checker.ChatInProject(ctx, chatID, projectID)
	if err != nil || !found {
		res.Err = err
		return res
	}

	res.ChatID = chatID
	res.Outcome = Found
	return res
}
