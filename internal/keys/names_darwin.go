//go:build darwin
// +build darwin

package keys

// macOS virtual key codes (Carbon kVK_* constants, ANSI layout).
var table = []entry{
	{"A", 0}, {"S", 1}, {"D", 2}, {"F", 3}, {"H", 4}, {"G", 5}, {"Z", 6}, {"X", 7},
	{"C", 8}, {"V", 9}, {"B", 11}, {"Q", 12}, {"W", 13}, {"E", 14}, {"R", 15},
	{"Y", 16}, {"T", 17}, {"1", 18}, {"2", 19}, {"3", 20}, {"4", 21}, {"6", 22},
	{"5", 23}, {"Equal", 24}, {"9", 25}, {"7", 26}, {"Minus", 27}, {"8", 28},
	{"0", 29}, {"RightBracket", 30}, {"O", 31}, {"U", 32}, {"LeftBracket", 33},
	{"I", 34}, {"P", 35}, {"Return", 36}, {"L", 37}, {"J", 38}, {"Quote", 39},
	{"K", 40}, {"Semicolon", 41}, {"Backslash", 42}, {"Comma", 43}, {"Slash", 44},
	{"N", 45}, {"M", 46}, {"Period", 47}, {"Tab", 48}, {"Space", 49},
	{"Grave", 50}, {"Backspace", 51}, {"Escape", 53},
	{"RightMeta", 54}, {"Meta", 55}, {"Shift", 56}, {"CapsLock", 57}, {"Alt", 58},
	{"Control", 59}, {"RightShift", 60}, {"RightAlt", 61}, {"RightControl", 62},
	{"Fn", 63},
	{"F5", 96}, {"F6", 97}, {"F7", 98}, {"F3", 99}, {"F8", 100}, {"F9", 101},
	{"F11", 103}, {"F10", 109}, {"F12", 111}, {"F4", 118}, {"F2", 120}, {"F1", 122},
	{"Left", 123}, {"Right", 124}, {"Down", 125}, {"Up", 126},
	// aliases
	{"Enter", 36}, {"Esc", 53}, {"Cmd", 55}, {"Option", 58}, {"Ctrl", 59},
}
