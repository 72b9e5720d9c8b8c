// Package img registers the BNTX image format with the standard image
// package. Import it with a blank import to enable image.Decode and
// image.DecodeConfig for BNTX:
//
//	import _ "github.com/switchtex/bntx/img"
package img

import (
	"image"

	"github.com/switchtex/bntx"
)

func init() {
	image.RegisterFormat("bntx", "BNTX", bntx.Decode, bntx.DecodeConfig)
}
