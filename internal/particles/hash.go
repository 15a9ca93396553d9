package particles

// Hash is the integer hash used by the shaders to pick random respawn
// positions. It works on wrapping 32 bit integers and returns a value in
// [0, 1].
func Hash(x, id, seed int32) float32 {
	x = x*1235167 + id*948737 + seed*9284365
	x = (x >> 13) ^ x
	return float32((x*(x*x*60493+19990303)+1376312589)&0x7fffffff) / float32(0x7fffffff-1)
}

// HashGLSL is the GLSL version of Hash. The shader must declare the
// uniform int seed, and idExpr is the per particle id such as gl_VertexID.
func HashGLSL(idExpr string) string {
	return `
float hash(int x) {
	x = x*1235167 + ` + idExpr + `*948737 + seed*9284365;
	x = (x >> 13) ^ x;
	return float((x * (x * x * 60493 + 19990303) + 1376312589) & 0x7fffffff) / float(0x7fffffff - 1);
}
`
}
