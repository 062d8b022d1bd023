package card

import "strings"

// Допустимая длина PAN по ISO/IEC 7812
const (
	minPANLength = 13
	maxPANLength = 19
)

// ValidNumber проверяет номер карты: длина PAN и контрольная цифра
// по алгоритму Луна. Пробелы и дефисы-разделители игнорируются.
func ValidNumber(number string) bool {
	digits := normalize(number)
	if len(digits) < minPANLength || len(digits) > maxPANLength {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')

		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}

		sum += d
		double = !double
	}

	return sum%10 == 0
}

// Last4 возвращает последние четыре цифры номера карты
func Last4(number string) string {
	digits := normalize(number)
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}

// normalize убирает разделители; пустая строка означает невалидный ввод
func normalize(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	number = strings.ReplaceAll(number, "-", "")

	for _, ch := range number {
		if ch < '0' || ch > '9' {
			return ""
		}
	}

	return number
}
