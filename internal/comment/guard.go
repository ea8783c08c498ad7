package comment

import "context"

// Guard resolves whether a caller may act on a comment or its parent task.
// Checks run per request and are never cached; ownership can change
// underneath us via deletion.
type Guard struct {
	tasks    TaskDirectory
	comments Repository
}

func NewGuard(tasks TaskDirectory, comments Repository) *Guard {
	return &Guard{tasks: tasks, comments: comments}
}

// CanCommentOn passes iff the task exists and the caller owns it. A task
// owned by someone else fails exactly like an absent one. Reads of a task's
// comments use the same predicate.
func (g *Guard) CanCommentOn(ctx context.Context, caller, taskID string) error {
	_, err := g.tasks.GetOwned(ctx, taskID, caller)
	return err
}

// CanMutate passes iff the comment exists and the caller authored it. The
// mutation queries re-apply the author predicate, so a stale positive here
// cannot widen access.
func (g *Guard) CanMutate(ctx context.Context, caller, commentID string) error {
	_, err := g.comments.GetAuthored(ctx, commentID, caller)
	return err
}
