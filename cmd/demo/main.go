package main

import (
	"fmt"
	"math/big"

	"github.com/trippwill/go-ieee754/binary"
)

func must(v binary.Binary, err error) binary.Binary {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	f := binary.IEEEdouble
	ctx := binary.NewContext()

	format := "%-8s\t%18s\t%s\n"
	sep := "-------------------------------------------------------"

	fmt.Println("format:", f.String())
	fmt.Println("decimal precision:", f.DecimalPrecision())
	println(sep)

	a := must(f.FromString(ctx, "100.00"))
	b := must(f.FromString(ctx, "200.00"))
	c := must(f.Add(ctx, a, b))

	fmt.Printf(format, "a", f.ToDecimalString(a), a.ToHexString())
	fmt.Printf(format, "b", f.ToDecimalString(b), b.ToHexString())
	fmt.Printf(format, "a+b", f.ToDecimalString(c), c.ToHexString())
	println(sep)

	a = must(f.FromString(ctx, "-0.50"))
	b = must(f.FromString(ctx, "37.50"))
	c = must(f.Add(ctx, a, b))
	d := must(f.Subtract(ctx, a, b))

	fmt.Printf(format, "a", f.ToDecimalString(a), "")
	fmt.Printf(format, "b", f.ToDecimalString(b), "")
	fmt.Printf(format, "a+b", f.ToDecimalString(c), "")
	fmt.Printf(format, "a-b", f.ToDecimalString(d), "")
	println(sep)

	a = must(f.FromString(ctx, "0.1"))
	c = must(f.Multiply(ctx, a, a))

	fmt.Printf(format, "a", f.ToDecimalString(a), "")
	fmt.Printf(format, "a*a", f.ToDecimalStringPrecision(c, 20), "")
	println(sep)

	one := f.MakeOne(false)
	three := must(f.FromString(ctx, "3"))
	third := must(f.Divide(ctx, one, three))

	fmt.Printf(format, "1", f.ToDecimalString(one), "")
	fmt.Printf(format, "3", f.ToDecimalString(three), "")
	fmt.Printf(format, "1/3", f.ToDecimalStringPrecision(third, 20), "")
	println(sep)

	// sqrt, fma, remainder
	two := must(f.FromString(ctx, "2"))
	root2 := must(f.Sqrt(ctx, two))
	fmt.Printf(format, "sqrt(2)", f.ToDecimalStringPrecision(root2, 17), "")

	fma := must(f.FMA(ctx, two, three, one))
	fmt.Printf(format, "2*3+1", f.ToDecimalString(fma), "")

	rem, err := f.Remainder(ctx, must(f.FromString(ctx, "7.5")), two)
	if err != nil {
		panic(err)
	}
	fmt.Printf(format, "7.5 rem 2", f.ToDecimalString(rem), "")
	println(sep)

	// comparison and min/max
	cmp, err := f.Compare(ctx, a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println("compare(0.1, 37.5):", cmp)

	maxVal, err := f.Max(ctx, a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println("max(0.1, 37.5):", f.ToDecimalString(maxVal))
	println(sep)

	// scaleb/logb/next_up/next_down
	scaled, err := f.ScaleB(ctx, one, 10)
	if err != nil {
		panic(err)
	}
	fmt.Println("scaleb(1, 10):", f.ToDecimalString(scaled))
	fmt.Println("logb_integral(1024):", f.LogBIntegral(scaled))
	fmt.Println("next_up(1):", f.ToDecimalString(f.NextUp(ctx, one)))
	fmt.Println("next_down(1):", f.ToDecimalString(f.NextDown(ctx, one)))
	println(sep)

	// round-to-integral / convert-to-integer
	half := must(f.FromString(ctx, "2.5"))
	rounded, err := f.RoundToIntegral(ctx, half)
	if err != nil {
		panic(err)
	}
	fmt.Println("round_to_integral(2.5, half-even):", f.ToDecimalString(rounded))

	asInt, err := f.ConvertToInteger(ctx, binary.Int64Format, binary.HalfEven, half)
	if err != nil {
		panic(err)
	}
	fmt.Println("convert_to_integer(2.5):", asInt)
	println(sep)

	// pack/unpack
	bits, err := half.Pack()
	if err != nil {
		panic(err)
	}
	fmt.Printf("pack(2.5): %#x\n", bits)
	unpacked, err := f.Unpack(bits)
	if err != nil {
		panic(err)
	}
	fmt.Println("unpack(pack(2.5)):", f.ToDecimalString(unpacked))
	println(sep)

	// exception handling: a custom context that raises an error on
	// division by zero instead of silently returning infinity.
	strict := binary.NewContext()
	strict.SetHandler(binary.KindDivideByZero, binary.Handler{Kind: binary.HandlerRaise})
	zero := f.MakeZero(false)
	if _, err := f.Divide(strict, one, zero); err != nil {
		fmt.Println("strict 1/0:", err)
	}

	// special values
	inf := f.MakeInfinity(false)
	ninf := f.MakeInfinity(true)
	nan := f.MakeNaN(false, false, big.NewInt(0))
	fmt.Println("Infinity:", f.ToDecimalString(inf), "NaN:", f.ToDecimalString(nan), "-Infinity:", f.ToDecimalString(ninf))
	fmt.Println("Infinity is infinite:", inf.IsInfinite())
	fmt.Println("-Infinity is infinite:", ninf.IsInfinite())
	fmt.Println("-Infinity is negative:", ninf.Sign())
	fmt.Println("NaN is NaN:", nan.IsNaN())

	fmt.Println("flags raised:", ctx.Flags())
}
