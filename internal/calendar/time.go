package calendar

import "time"

// timeNow is a package-level variable for testability.
// Tests can replace this to control what Today returns.
var timeNow = time.Now
