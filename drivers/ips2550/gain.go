package ips2550

// gainFactors is the AFE master gain table indexed by the 7-bit gain code.
// Codes 0..95 are defined; the remaining code space is reserved. Steps are a
// constant-percentage (~4.9%) progression from 2x to 123.24x.
var gainFactors = [96]float64{
	2.0, 2.1, 2.18, 2.29, 2.38, 2.5, 2.59, 2.72,
	2.83, 2.97, 3.09, 3.24, 3.36, 3.53, 3.67, 3.85,
	4.0, 4.2, 4.36, 4.58, 4.76, 4.99, 5.19, 5.45,
	5.66, 5.94, 6.17, 6.48, 6.73, 7.06, 7.34, 7.7,
	8.0, 8.4, 8.72, 9.16, 9.51, 9.99, 10.38, 10.89,
	11.31, 11.88, 12.34, 12.96, 13.46, 14.13, 14.67, 15.41,
	16.0, 16.8, 17.45, 18.32, 19.02, 19.98, 20.75, 21.79,
	22.62, 23.76, 24.68, 25.91, 26.91, 28.26, 29.34, 30.81,
	32.0, 33.6, 34.9, 36.64, 38.05, 39.95, 41.5, 43.58,
	45.25, 47.51, 49.36, 51.83, 53.82, 56.52, 58.69, 61.62,
	64.0, 67.2, 69.79, 73.28, 76.1, 79.9, 83.01, 87.16,
	90.5, 95.02, 98.72, 103.66, 107.65, 113.03, 117.38, 123.24,
}
