package specfunc

import "math"

const logSqrt2Pi = 0.9189385332046727 // log(sqrt(2*pi))

// logFactorial holds log((k-1)!) for integer arguments k = 1..126. The exact
// log-gamma values at small positive integers, courtesy of the NumPy devs.
var logFactorial = [126]float64{
	0.000000000000000, 0.0000000000000000, 0.69314718055994529,
	1.791759469228055, 3.1780538303479458, 4.7874917427820458,
	6.5792512120101012, 8.5251613610654147, 10.604602902745251,
	12.801827480081469, 15.104412573075516, 17.502307845873887,
	19.987214495661885, 22.552163853123425, 25.19122118273868,
	27.89927138384089, 30.671860106080672, 33.505073450136891,
	36.395445208033053, 39.339884187199495, 42.335616460753485,
	45.380138898476908, 48.471181351835227, 51.606675567764377,
	54.784729398112319, 58.003605222980518, 61.261701761002001,
	64.557538627006338, 67.88974313718154, 71.257038967168015,
	74.658236348830158, 78.092223553315307, 81.557959456115043,
	85.054467017581516, 88.580827542197682, 92.136175603687093,
	95.719694542143202, 99.330612454787428, 102.96819861451381,
	106.63176026064346, 110.32063971475739, 114.03421178146171,
	117.77188139974507, 121.53308151543864, 125.3172711493569,
	129.12393363912722, 132.95257503561632, 136.80272263732635,
	140.67392364823425, 144.5657439463449, 148.47776695177302,
	152.40959258449735, 156.3608363030788, 160.3311282166309,
	164.32011226319517, 168.32744544842765, 172.35279713916279,
	176.39584840699735, 180.45629141754378, 184.53382886144948,
	188.6281734236716, 192.7390472878449, 196.86618167289001,
	201.00931639928152, 205.1681994826412, 209.34258675253685,
	213.53224149456327, 217.73693411395422, 221.95644181913033,
	226.1905483237276, 230.43904356577696, 234.70172344281826,
	238.97838956183432, 243.26884900298271, 247.57291409618688,
	251.89040220972319, 256.22113555000954, 260.56494097186322,
	264.92164979855278, 269.29109765101981, 273.67312428569369,
	278.06757344036612, 282.4742926876304, 286.89313329542699,
	291.32395009427029, 295.76660135076065, 300.22094864701415,
	304.68685676566872, 309.1641935801469, 313.65282994987905,
	318.1526396202093, 322.66349912672615, 327.1852877037752,
	331.71788719692847, 336.26118197919845, 340.81505887079902,
	345.37940706226686, 349.95411804077025, 354.53908551944079,
	359.1342053695754, 363.73937555556347, 368.35449607240474,
	372.97946888568902, 377.61419787391867, 382.25858877306001,
	386.91254912321756, 391.57598821732961, 396.24881705179155,
	400.93094827891576, 405.6222961611449, 410.32277652693733,
	415.03230672824964, 419.75080559954472, 424.47819341825709,
	429.21439186665157, 433.95932399501481, 438.71291418612117,
	443.47508812091894, 448.24577274538461, 453.02489623849613,
	457.81238798127816, 462.60817852687489, 467.4121995716082,
	472.22438392698058, 477.04466549258564, 481.87297922988796,
}

// Rational approximation coefficients for lgamma, from Cody & Hillstrom
// (1967): one set per band of z below 12.
var (
	lgammaP4 = [5]float64{-2.12159572323e+05, 2.30661510616e+05, 2.74647644705e+04, -4.02621119975e+04, -2.29660729780e+03}
	lgammaQ4 = [4]float64{-1.16328495004e+05, -1.46025937511e+05, -2.42357409629e+04, -5.70691009324e+02}

	lgammaP2 = [5]float64{-7.83359299449e+01, -1.42046296688e+02, 1.37519416416e+02, 7.86994924154e+01, 4.16438922228}
	lgammaQ2 = [4]float64{4.70668766060e+01, 3.13399215894e+02, 2.63505074721e+02, 4.33400022514e+01}

	lgammaP1 = [5]float64{-2.66685511495, -2.44387534237e+01, -2.19698958928e+01, 1.11667541262e+01, 3.13060547623}
	lgammaQ1 = [4]float64{6.07771387771e-01, 1.19400905721e+01, 3.14690115749e+01, 1.52346874070e+01}
)

func lgammaRational(z float64, p [5]float64, q [4]float64) float64 {
	num := (((p[4]*z+p[3])*z+p[2])*z+p[1])*z + p[0]
	den := (((z+q[3])*z+q[2])*z+q[1])*z + q[0]
	return num / den
}

// Lgamma computes the natural logarithm of the gamma function for z > 0.
//
// Integer arguments below 127 hit a log-factorial lookup table and are exact
// to machine precision; this is the common case since the Polya-Gamma shape
// parameter is a positive integer. Arguments above 12 use a Stirling
// asymptotic expansion and the rest fall into rational-approximation bands.
// Absolute relative error against the standard library lgamma is about
// 9.4e-10.
func Lgamma(z float64) float64 {
	if zz := uint64(z); zz >= 1 && z < 127 && z == float64(zz) {
		return logFactorial[zz-1]
	}

	switch {
	case z > 12:
		const (
			a1 = 0.08333333333333333   // 1/12
			a2 = 0.002777777777777778  // 1/360
			a3 = 0.0007936507936507937 // 1/1260
		)
		z2 := z * z
		out := (z-0.5)*math.Log(z) - z + logSqrt2Pi
		return out + a1/z - a2/(z2*z) + a3/(z2*z2*z)
	case z >= 4:
		return lgammaRational(z, lgammaP4, lgammaQ4)
	case z > 1.5:
		return (z - 2) * lgammaRational(z, lgammaP2, lgammaQ2)
	case z >= 0.5:
		return (z - 1) * lgammaRational(z, lgammaP1, lgammaQ1)
	case z > epsilon:
		// Shift into the [0.5, 1.5] band and correct for the pole at 0.
		x := z + 1
		return z*lgammaRational(x, lgammaP1, lgammaQ1) - math.Log(z)
	case z > tiny:
		return -math.Log(z)
	default:
		return 708.3964202663686 // -log(DBL_MIN)
	}
}
