package binary

// Well-known formats, built once at package init the way the original
// module exposes ready-made IEEE and x87 formats rather than making every
// caller assemble one from FromIEEE/FromPrecisionEWidth by hand.
var (
	IEEEhalf   = mustFormat(FromIEEE(16))
	IEEEsingle = mustFormat(FromIEEE(32))
	IEEEdouble = mustFormat(FromIEEE(64))
	IEEEquad   = mustFormat(FromIEEE(128))

	X87Extended = mustFormat(FromPrecisionEWidth(64, 15))
	X87Double   = mustFormat(FromPrecisionEWidth(53, 15))
	X87Single   = mustFormat(FromPrecisionEWidth(24, 15))
)

func mustFormat(f BinaryFormat, err error) BinaryFormat {
	if err != nil {
		panic(err)
	}
	return f
}
