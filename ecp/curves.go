package ecp

// Parameter tables for the five supported NIST curves, transcribed from
// SEC1 / FIPS 186-3 §D.2. P-192/224/256 are given in hex (the conventional
// SEC1 rendering); P-384/521's prime and order are given in decimal and
// their b/Gx/Gy in hex, matching how the teacher's own parameter tables
// are written.

type curveConst struct {
	value string
	radix int
}

func hex(s string) curveConst { return curveConst{value: s, radix: 16} }
func dec(s string) curveConst { return curveConst{value: s, radix: 10} }

type curveParams struct {
	p, b, gx, gy, n curveConst
	modp            ModpKind
}

var knownCurves = map[NamedCurve]curveParams{
	SECP192R1: {
		p:  hex("fffffffffffffffffffffffffffffffeffffffffffffffff"),
		b:  hex("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"),
		gx: hex("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"),
		gy: hex("07192b95ffc8da78631011ed6b24cdd573f977a11e794811"),
		n:  hex("ffffffffffffffffffffffff99def836146bc9b1b4d22831"),
		modp: ModpGeneric,
	},
	SECP224R1: {
		p:  hex("ffffffffffffffffffffffffffffffff000000000000000000000001"),
		b:  hex("b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4"),
		gx: hex("b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21"),
		gy: hex("bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34"),
		n:  hex("ffffffffffffffffffffffffffff16a2e0b8f03e13dd29455c5c2a3d"),
		modp: ModpGeneric,
	},
	SECP256R1: {
		p:  hex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"),
		b:  hex("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
		gx: hex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
		gy: hex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
		n:  hex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
		modp: ModpGeneric,
	},
	SECP384R1: {
		p:  dec("39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112319"),
		b:  hex("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef"),
		gx: hex("aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7"),
		gy: hex("3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f"),
		n:  dec("39402006196394479212279040100143613805079739270465446667946905279627659399113263569398956308152294913554433653942643"),
		modp: ModpGeneric,
	},
	SECP521R1: {
		p:  dec("6864797660130609714981900799081393217269435300143305409394463459185543183397656052122559640661454554977296311391480858037121987999716643812574028291115057151"),
		b:  hex("051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00"),
		gx: hex("c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66"),
		gy: hex("11839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650"),
		n:  dec("6864797660130609714981900799081393217269435300143305409394463459185543183397655394245057746333217197532963996371363321113864768612440380340372808892707005449"),
		modp: ModpP521,
	},
}
