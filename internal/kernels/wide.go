package kernels

import "github.com/tphakala/go-ta/internal/fp"

// Wide kernels partition the input into floor(n/width) full blocks held in
// per-lane accumulators, then fold the lanes pairwise and append the n%width
// remainder in original scalar order. The block width matches the lane
// count of the tier the kernel registers under, which keeps independent
// dependency chains in flight and lets the compiler keep the accumulators
// in registers. Because the lanes reorder additions relative to the scalar
// kernel, results agree with scalar only within a small relative tolerance.

func sum2(data []fp.Float) fp.Float {
	var s0, s1 fp.Float
	n := len(data)
	i := 0
	for ; i+2 <= n; i += 2 {
		s0 += data[i]
		s1 += data[i+1]
	}
	s := s0 + s1
	for ; i < n; i++ {
		s += data[i]
	}
	return s
}

func sum4(data []fp.Float) fp.Float {
	var s0, s1, s2, s3 fp.Float
	n := len(data)
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += data[i]
		s1 += data[i+1]
		s2 += data[i+2]
		s3 += data[i+3]
	}
	s := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		s += data[i]
	}
	return s
}

func sum8(data []fp.Float) fp.Float {
	var s0, s1, s2, s3, s4, s5, s6, s7 fp.Float
	n := len(data)
	i := 0
	for ; i+8 <= n; i += 8 {
		s0 += data[i]
		s1 += data[i+1]
		s2 += data[i+2]
		s3 += data[i+3]
		s4 += data[i+4]
		s5 += data[i+5]
		s6 += data[i+6]
		s7 += data[i+7]
	}
	s := ((s0 + s1) + (s2 + s3)) + ((s4 + s5) + (s6 + s7))
	for ; i < n; i++ {
		s += data[i]
	}
	return s
}

func dot2(a, b []fp.Float) fp.Float {
	var s0, s1 fp.Float
	n := len(a)
	i := 0
	for ; i+2 <= n; i += 2 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
	}
	s := s0 + s1
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

func dot4(a, b []fp.Float) fp.Float {
	var s0, s1, s2, s3 fp.Float
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	s := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

func dot8(a, b []fp.Float) fp.Float {
	var s0, s1, s2, s3, s4, s5, s6, s7 fp.Float
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
		s4 += a[i+4] * b[i+4]
		s5 += a[i+5] * b[i+5]
		s6 += a[i+6] * b[i+6]
		s7 += a[i+7] * b[i+7]
	}
	s := ((s0 + s1) + (s2 + s3)) + ((s4 + s5) + (s6 + s7))
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}
