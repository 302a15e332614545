package peg

import "fmt"

// CaptureKind is a closed enumeration of capture kinds. The core stores
// kinds opaquely: only the AST translator (see package translate) knows what
// each one means to the embedding language; the VM's capture
// post-processing drives off of this tag.
type CaptureKind uint8

const ( //nolint:revive
	CapStr           CaptureKind = iota // verbatim substring
	CapAction                           // run side-effecting code
	CapJString                          // JSON string
	CapJInt                             // JSON int
	CapJFloat                           // JSON float
	CapJArray                           // JSON array
	CapJObject                          // JSON object
	CapJFieldFixed                      // JSON object field, fixed name
	CapJFieldDynamic                    // JSON object field, dynamic name
)

var captureKindNames = [...]string{
	CapStr:           "str",
	CapAction:        "action",
	CapJString:       "jstring",
	CapJInt:          "jint",
	CapJFloat:        "jfloat",
	CapJArray:        "jarray",
	CapJObject:       "jobject",
	CapJFieldFixed:   "jfieldfixed",
	CapJFieldDynamic: "jfielddynamic",
}

func (k CaptureKind) String() string {
	if int(k) < len(captureKindNames) {
		if name := captureKindNames[k]; name != "" {
			return name
		}
	}
	return fmt.Sprintf("illegal capture kind (%d)", uint8(k))
}
