package seq

// Chain returns f(s). Together with Chain2 to Chain6 it reads a pipeline
// left to right:
//
//	seq.Chain2(seq.OfSlice(xs),
//		func(s seq.Bidi[int, int]) seq.Seq[int, int] { return seq.Map(s, double) },
//		func(s seq.Seq[int, int]) seq.Seq[int, int] { return seq.Filter(s, big) },
//	)
func Chain[A, B any](s A, f func(A) B) B {
	return f(s)
}

// Chain2 returns g(f(s)).
func Chain2[A, B, C any](s A, f func(A) B, g func(B) C) C {
	return g(f(s))
}

// Chain3 returns h(g(f(s))).
func Chain3[A, B, C, D any](s A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(s)))
}

// Chain4 returns f4(f3(f2(f1(s)))).
func Chain4[A, B, C, D, E any](s A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) E {
	return f4(f3(f2(f1(s))))
}

// Chain5 returns f5(f4(f3(f2(f1(s))))).
func Chain5[A, B, C, D, E, F any](s A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F) F {
	return f5(f4(f3(f2(f1(s)))))
}

// Chain6 returns f6(f5(f4(f3(f2(f1(s)))))).
func Chain6[A, B, C, D, E, F, G any](s A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G) G {
	return f6(f5(f4(f3(f2(f1(s))))))
}
