package ai

// Interests defines the visitor interest categories that generators and
// response assembly recognize. Requests may carry other values; these
// are the ones that receive tailored phrasing.
var Interests = []string{
	"Acting",
	"Architecture",
	"Art",
	"Drawing",
	"Food",
	"History",
	"Movies",
	"Music",
	"Photography",
	"Running",
	"Technology",
	"TV",
}
