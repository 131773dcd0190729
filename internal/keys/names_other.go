//go:build !darwin
// +build !darwin

package keys

// libuiohook virtual key codes (VC_* constants).
var table = []entry{
	{"Escape", 0x0001},
	{"1", 0x0002}, {"2", 0x0003}, {"3", 0x0004}, {"4", 0x0005}, {"5", 0x0006},
	{"6", 0x0007}, {"7", 0x0008}, {"8", 0x0009}, {"9", 0x000A}, {"0", 0x000B},
	{"Minus", 0x000C}, {"Equal", 0x000D}, {"Backspace", 0x000E}, {"Tab", 0x000F},
	{"Q", 0x0010}, {"W", 0x0011}, {"E", 0x0012}, {"R", 0x0013}, {"T", 0x0014},
	{"Y", 0x0015}, {"U", 0x0016}, {"I", 0x0017}, {"O", 0x0018}, {"P", 0x0019},
	{"LeftBracket", 0x001A}, {"RightBracket", 0x001B}, {"Return", 0x001C},
	{"Control", 0x001D},
	{"A", 0x001E}, {"S", 0x001F}, {"D", 0x0020}, {"F", 0x0021}, {"G", 0x0022},
	{"H", 0x0023}, {"J", 0x0024}, {"K", 0x0025}, {"L", 0x0026},
	{"Semicolon", 0x0027}, {"Quote", 0x0028}, {"Grave", 0x0029}, {"Shift", 0x002A},
	{"Backslash", 0x002B},
	{"Z", 0x002C}, {"X", 0x002D}, {"C", 0x002E}, {"V", 0x002F}, {"B", 0x0030},
	{"N", 0x0031}, {"M", 0x0032},
	{"Comma", 0x0033}, {"Period", 0x0034}, {"Slash", 0x0035}, {"RightShift", 0x0036},
	{"Alt", 0x0038}, {"Space", 0x0039}, {"CapsLock", 0x003A},
	{"F1", 0x003B}, {"F2", 0x003C}, {"F3", 0x003D}, {"F4", 0x003E}, {"F5", 0x003F},
	{"F6", 0x0040}, {"F7", 0x0041}, {"F8", 0x0042}, {"F9", 0x0043}, {"F10", 0x0044},
	{"F11", 0x0057}, {"F12", 0x0058},
	{"RightControl", 0x0E1D}, {"RightAlt", 0x0E38}, {"Meta", 0x0E5B}, {"RightMeta", 0x0E5C},
	{"Up", 0xE048}, {"Left", 0xE04B}, {"Right", 0xE04D}, {"Down", 0xE050},
	// aliases
	{"Enter", 0x001C}, {"Esc", 0x0001}, {"Ctrl", 0x001D}, {"Option", 0x0038},
	{"Cmd", 0x0E5B},
}
