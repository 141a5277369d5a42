package mobilpay

import (
	"github.com/MarcGrol/mobilpaybundle/lib/myconfig"
	"github.com/MarcGrol/mobilpaybundle/lib/mycontainer"
)

// inflateServicesInConfig replaces, at any depth, every string starting with "@" by a
// service reference. "@@" keeps a literal "@". Other scalars are left alone.
func inflateServicesInConfig(config *myconfig.Value) {
	myconfig.Transform(config, func(_ string, scalar any) any {
		s, ok := scalar.(string)
		if !ok {
			return scalar
		}
		return mycontainer.InflateString(s)
	})
}
