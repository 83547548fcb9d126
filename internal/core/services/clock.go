package services

import "time"

// nowFunc returns the current time. Swapped in tests.
var nowFunc = time.Now
