// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package sec

// Principal is the identity resolved for a single request by the
// authentication middleware.
//
// It lives only in the request [context.Context] and is discarded when the
// request ends. There is no process-wide security holder.
type Principal struct {
	// Email is the verified token subject. It is guaranteed to exist in the
	// identity store at the time the request was authenticated.
	Email string
}
