// SPDX-License-Identifier: GPL-3.0-or-later
package rules

import "regexp"

// Default returns the stock rule set. Curated for Indian transactional
// mail: bank alert senders, UPI phrasing, GST lines, INR amount formats.
func Default() *Set {
	return &Set{
		BlockedSenders: compileAll([]string{
			`@campaigns\.`, `@marketing\.`, `@promo\.`, `@newsletter\.`,
			`@mailer\.`, `@offers\.`, `@deals\.`, `@info\.`, `@news\.`,
			`@notifications\.zomato\.com`, `@notifications\.swiggy\.com`,
			`noreply.*sale`, `noreply.*offer`, `noreply.*deal`,
			`@engage\.`, `@bulk\.`, `@mass\.`, `@blast\.`,
			`@promotions\.`, `@updates\.`, `@digest\.`,
			`@email\.mg\.`, `@sendgrid\.`, `@mailchimp\.`,
			`@exacttarget\.`, `@emarsys\.`, `@moengage\.`,
			`@clevertap\.`, `@webengage\.`, `@netcore\.`,
		}),
		TrustedSenders: compileAll([]string{
			// Banks
			`alerts@hdfcbank\.net`, `alerts@icicibank\.com`, `alerts@sbi\.co\.in`,
			`alerts@axisbank\.com`, `alerts@kotak\.com`, `alerts@idfcfirstbank\.com`,
			`alerts@yesbank\.in`, `donotreply@indusind\.com`,
			// E-commerce
			`auto-confirm@amazon\.in`, `order-update@amazon\.in`, `ship-confirm@amazon\.in`,
			`noreply@flipkart\.com`, `no-reply@flipkart\.com`,
			`noreply@myntra\.com`, `noreply@ajio\.com`, `noreply@meesho\.com`,
			`noreply@tatacliq\.com`, `noreply@nykaa\.com`,
			// Food delivery
			`no-reply@swiggy\.in`, `noreply@zomato\.com`,
			`orders@swiggy\.in`, `orders@zomato\.com`,
			`receipts@uber\.com`, `noreply@dunzo\.com`,
			// Travel
			`noreply@irctc\.co\.in`, `ticket@irctc\.co\.in`,
			`booking@makemytrip\.com`, `noreply@goibibo\.com`,
			`noreply@redbus\.in`, `noreply@cleartrip\.com`,
			`noreply@ola\.money`,
			// Payments / UPI
			`noreply@paytm\.com`, `noreply@phonepe\.com`,
			`noreply@razorpay\.com`, `noreply@payu\.in`,
			`alerts@cred\.club`,
			// Utilities
			`noreply@jio\.com`, `noreply@airtel\.in`,
			`noreply@tatapowerdel\.com`,
			// Entertainment
			`noreply@netflix\.com`, `noreply@hotstar\.com`,
			`noreply@bookmyshow\.com`, `noreply@spotify\.com`,
			// Groceries
			`noreply@bigbasket\.com`, `noreply@blinkit\.com`,
			`noreply@zepto\.co`, `no-reply@grofers\.com`,
		}),
		SpamSubjectKeywords: []string{
			"sale", "offer", "% off", "discount", "deal of", "deals",
			"coupon", "cashback offer", "subscribe", "newsletter",
			"exclusive offer", "limited time", "flash sale", "mega sale",
			"festival offer", "diwali sale", "holi offer", "republic day sale",
			"independence day", "big billion", "great indian",
			"unsubscribe", "weekly digest", "daily digest",
			"recommended for you", "you might like", "trending",
			"new arrivals", "just launched", "coming soon", "pre-order",
			"earn rewards", "refer and earn", "invite friends",
			"survey", "feedback request", "rate your", "review your",
			"wishlist", "price drop", "back in stock",
			"free shipping", "free delivery", "buy 1 get",
			"top picks", "best sellers", "don't miss",
			"last chance", "hurry", "limited stock",
			"win big", "congratulations", "jackpot", "lucky winner",
			"claim your", "act now", "only today", "expires soon",
			"shop now", "grab now", "buy now", "order now",
			"biggest sale", "clearance", "warehouse sale",
			"summer sale", "winter sale", "end of season",
			"loyalty points", "reward points", "bonus points",
			"special promotion", "promo code", "voucher",
		},
		SpamBodyKeywords: []string{
			"unsubscribe", "opt-out", "opt out", "click here to unsubscribe",
			"manage your preferences", "email preferences", "manage subscriptions",
			"you are receiving this", "you received this email because",
			"if you no longer wish", "to stop receiving",
			"view in browser", "view this email in your browser",
			"add us to your address book", "add to contacts",
			"this is a promotional", "this is an advertisement",
			"terms and conditions apply", "t&c apply", "*t&c",
			"shop the collection", "explore now", "browse collection",
			"curated for you", "handpicked for you", "just for you",
			"we thought you", "you may also like", "customers also bought",
			"use code", "apply code", "coupon code", "promo code",
			"flat ₹", "flat rs", "upto ₹", "upto rs", "up to ₹", "up to rs",
			"minimum order", "no minimum", "above ₹", "above rs",
			"download the app", "install our app", "get the app",
			"follow us on", "like us on", "join us on",
			"share with friends", "tell a friend", "spread the word",
		},
		TransactionSubjectKeywords: []string{
			"payment", "receipt", "invoice", "bill",
			"debited", "credited", "debit", "transaction",
			"order confirmed", "order confirmation", "booking confirmed",
			"booking confirmation", "purchase", "paid",
			"payment successful", "payment received", "payment confirmation",
			"your order", "order details", "order placed",
			"e-ticket", "ticket confirmed", "ticket booked",
			"statement", "emi", "installment", "due",
			"subscription renewed", "subscription charged",
			"recharge successful", "recharge done",
			"delivery", "shipped", "dispatched",
			"refund", "reversal", "chargeback",
			"otp",
			"upi", "neft", "imps", "rtgs",
			"auto-debit", "auto debit", "mandate",
			"renewal", "charged",
		},
		TransactionBodyKeywords: []string{
			"amount debited", "amount credited", "total amount",
			"transaction id", "order id", "booking id", "reference number",
			"payment of", "paid ₹", "paid rs", "paid inr",
			"₹", "rs.", "inr ",
			"upi ref", "upi id", "imps ref",
			"card ending", "account ending", "a/c",
			"invoice number", "bill number", "receipt number",
			"gst", "cgst", "sgst", "igst",
			"net amount", "grand total", "subtotal",
			"available balance", "closing balance",
		},
		Merchants: []Merchant{
			// E-commerce
			{"flipkart", "Flipkart"},
			{"myntra", "Myntra"},
			{"ajio", "AJIO"},
			{"meesho", "Meesho"},
			{"snapdeal", "Snapdeal"},
			{"nykaa", "Nykaa"},
			{"tatacliq", "Tata CLiQ"},
			{"jiomart", "JioMart"},
			{"amazon", "Amazon India"},
			// Food delivery
			{"zomato", "Zomato"},
			{"swiggy", "Swiggy"},
			{"eatsure", "EatSure"},
			{"dominos", "Domino's"},
			{"dunzo", "Dunzo"},
			// Travel
			{"irctc", "IRCTC"},
			{"makemytrip", "MakeMyTrip"},
			{"goibibo", "Goibibo"},
			{"cleartrip", "Cleartrip"},
			{"yatra", "Yatra"},
			{"ola", "Ola"},
			{"uber", "Uber India"},
			{"rapido", "Rapido"},
			{"redbus", "RedBus"},
			{"ixigo", "ixigo"},
			// Groceries
			{"bigbasket", "BigBasket"},
			{"blinkit", "Blinkit"},
			{"grofers", "Grofers"},
			{"zepto", "Zepto"},
			{"dmart", "DMart"},
			{"instamart", "Swiggy Instamart"},
			// Entertainment
			{"netflix", "Netflix"},
			{"hotstar", "Disney+ Hotstar"},
			{"primevideo", "Amazon Prime Video"},
			{"prime video", "Amazon Prime Video"},
			{"bookmyshow", "BookMyShow"},
			{"spotify", "Spotify"},
			{"jiocinema", "JioCinema"},
			{"sonyliv", "SonyLIV"},
			{"zee5", "ZEE5"},
			// Payments / UPI
			{"paytm", "Paytm"},
			{"phonepe", "PhonePe"},
			{"googlepay", "Google Pay"},
			{"google pay", "Google Pay"},
			{"razorpay", "Razorpay"},
			{"payu", "PayU"},
			{"ccavenue", "CCAvenue"},
			{"bharatpe", "BharatPe"},
			// Banking
			{"hdfc", "HDFC Bank"},
			{"icici", "ICICI Bank"},
			{"sbi", "SBI"},
			{"axis", "Axis Bank"},
			{"kotak", "Kotak Mahindra"},
			{"idfc", "IDFC First"},
			// Utilities / Telecom
			{"jio", "Jio"},
			{"airtel", "Airtel"},
			{"vodafone", "Vodafone Idea"},
			{"bsnl", "BSNL"},
			{"tatapower", "Tata Power"},
			{"adani", "Adani"},
			// Healthcare
			{"practo", "Practo"},
			{"1mg", "1mg"},
			{"pharmeasy", "PharmEasy"},
			{"netmeds", "Netmeds"},
			{"apollo", "Apollo"},
			// Education
			{"unacademy", "Unacademy"},
			{"byju", "BYJU'S"},
			{"udemy", "Udemy"},
			{"coursera", "Coursera"},
			{"upgrad", "upGrad"},
			// International
			{"walmart", "Walmart"},
			{"starbucks", "Starbucks"},
			{"mcdonalds", "McDonald's"},
		},
		Categories: []Category{
			{"Food Delivery", []string{
				"zomato", "swiggy", "eatsure", "dunzo", "food order",
				"food delivery", "dominos", "pizza hut", "kfc", "burger king",
				"restaurant", "cafe", "dining", "biryani", "thali",
			}},
			{"Groceries", []string{
				"bigbasket", "blinkit", "grofers", "zepto", "dmart",
				"instamart", "grocery", "supermarket", "vegetables",
				"fruits", "milk", "ration", "kirana",
			}},
			{"Online Shopping", []string{
				"flipkart", "amazon", "myntra", "ajio", "meesho",
				"snapdeal", "nykaa", "tatacliq", "jiomart", "shopping",
				"order confirmed", "shipment", "delivered", "purchase",
			}},
			{"Travel & Transport", []string{
				"irctc", "makemytrip", "goibibo", "cleartrip", "yatra",
				"ola", "uber", "rapido", "redbus", "ixigo", "flight",
				"train", "bus", "cab", "taxi", "booking", "ticket",
				"airline", "indigo", "spicejet", "air india", "vistara",
			}},
			{"Entertainment", []string{
				"netflix", "hotstar", "prime video", "bookmyshow",
				"spotify", "jiocinema", "sonyliv", "zee5", "movie",
				"cinema", "concert", "game", "streaming", "subscription",
			}},
			{"Utilities & Bills", []string{
				"electricity", "water", "gas", "internet", "phone",
				"bill", "recharge", "jio", "airtel", "vodafone", "bsnl",
				"broadband", "dth", "tata power", "adani", "piped gas",
				"mobile recharge", "postpaid", "prepaid",
			}},
			{"Healthcare", []string{
				"hospital", "pharmacy", "medicine", "doctor", "dental",
				"medical", "health", "clinic", "practo", "1mg",
				"pharmeasy", "netmeds", "apollo", "diagnostic", "lab test",
			}},
			{"Education", []string{
				"unacademy", "byju", "udemy", "coursera", "upgrad",
				"course", "tuition", "school", "college", "books",
				"scholarship", "coaching", "exam", "fee",
			}},
			{"EMI & Loans", []string{
				"emi", "loan", "installment", "equated monthly",
				"home loan", "car loan", "personal loan", "credit card bill",
			}},
			{"Investments", []string{
				"mutual fund", "sip", "stocks", "shares", "demat",
				"zerodha", "groww", "upstox", "investment", "nps",
				"ppf", "fixed deposit", "fd", "rd",
			}},
		},
		PaymentMethods: []PaymentMethod{
			{
				Name: "UPI",
				Keywords: []string{
					"upi", "google pay", "phonepe", "paytm", "bhim",
					"bharatpe", "upi id", "upi ref", "@ybl", "@paytm",
					"@oksbi", "@okaxis", "@okhdfcbank",
				},
				Variants: []Variant{
					{"UPI - Google Pay", []string{"google pay", "gpay"}},
					{"UPI - PhonePe", []string{"phonepe"}},
					{"UPI - Paytm", []string{"paytm"}},
					{"UPI - BHIM", []string{"bhim"}},
				},
			},
			{
				Name:     "Credit Card",
				Keywords: []string{"credit card", "visa", "mastercard", "rupay", "amex"},
				Variants: []Variant{
					{"Credit Card - RuPay", []string{"rupay"}},
					{"Credit Card - Visa", []string{"visa"}},
					{"Credit Card - Mastercard", []string{"mastercard"}},
				},
			},
			{Name: "Debit Card", Keywords: []string{"debit card", "atm card"}},
			{Name: "Net Banking", Keywords: []string{"net banking", "netbanking", "neft", "rtgs", "imps"}},
			{Name: "Wallet", Keywords: []string{"wallet", "paytm wallet", "freecharge", "mobikwik"}},
			{Name: "EMI", Keywords: []string{"emi", "equated monthly", "installment"}},
			{Name: "Cash on Delivery", Keywords: []string{"cash on delivery", "cod", "pay on delivery"}},
		},
		AmountPatterns: compileAll([]string{
			`₹\s*([\d,]+\.?\d*)`,
			`Rs\.?\s*([\d,]+\.?\d*)`,
			`INR\s*([\d,]+\.?\d*)`,
			`Rupees?\s*([\d,]+\.?\d*)`,
			`(?:amount|total|paid|charged|debited|credited)\s*(?::|is|of|for)?\s*(?:₹|Rs\.?|INR)?\s*([\d,]+\.?\d*)`,
		}),
		FallbackAmountPatterns: compileAll([]string{
			`\$([\d,]+\.?\d*)`,
			`USD\s*([\d,]+\.?\d*)`,
			`\b(\d+\.\d{2})\b`,
		}),
		GSTPatterns: compileAll([]string{
			`(?:GST|CGST|SGST|IGST)\s*(?::|@|amount)?\s*(?:₹|Rs\.?|INR)?\s*([\d,]+\.?\d*)`,
			`(?:tax|gst)\s*(?:amount)?\s*(?::|=)?\s*(?:₹|Rs\.?|INR)?\s*([\d,]+\.?\d*)`,
		}),
		TransactionIDPatterns: compileAll([]string{
			`(?:order\s*(?:id|#|no\.?|number)?)\s*[:\-]?\s*([A-Z0-9\-]{6,25})`,
			`(?:transaction\s*(?:id|#|no\.?)?\s*[:\-]?\s*([A-Z0-9\-]{6,25}))`,
			`(?:upi\s*ref\s*(?:no\.?|#)?)\s*[:\-]?\s*(\d{10,16})`,
			`(?:ref\s*(?:no\.?|#|id)?)\s*[:\-]?\s*([A-Z0-9\-]{6,25})`,
			`(?:booking\s*id)\s*[:\-]?\s*([A-Z0-9\-]{6,25})`,
		}),
		CurrencyPattern: regexp.MustCompile(`(?i)[₹]|Rs\.?|INR`),
	}
}
