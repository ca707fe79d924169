package mocks

// FlightOffersJSON is a trimmed flight-offers response for JFK -> LHR with
// two direct offers, one connection and one carrier missing from the
// dictionary.
const FlightOffersJSON = `{
  "meta": {"count": 4},
  "data": [
    {
      "type": "flight-offer",
      "id": "1",
      "itineraries": [{
        "duration": "PT7H5M",
        "segments": [{
          "departure": {"iataCode": "JFK", "terminal": "7", "at": "2025-06-01T08:30:00"},
          "arrival": {"iataCode": "LHR", "terminal": "5", "at": "2025-06-01T20:35:00"},
          "carrierCode": "BA", "number": "178", "duration": "PT7H5M"
        }]
      }],
      "price": {"currency": "USD", "total": "612.40", "base": "410.00"},
      "travelerPricings": [{"fareDetailsBySegment": [{"segmentId": "1", "cabin": "ECONOMY"}]}]
    },
    {
      "type": "flight-offer",
      "id": "2",
      "itineraries": [{
        "duration": "PT7H10M",
        "segments": [{
          "departure": {"iataCode": "JFK", "terminal": "8", "at": "2025-06-01T18:00:00"},
          "arrival": {"iataCode": "LHR", "terminal": "3", "at": "2025-06-02T06:10:00"},
          "carrierCode": "AA", "number": "100", "duration": "PT7H10M"
        }]
      }],
      "price": {"currency": "USD", "total": "545.10"},
      "travelerPricings": [{"fareDetailsBySegment": [{"segmentId": "2", "cabin": "PREMIUM_ECONOMY"}]}]
    },
    {
      "type": "flight-offer",
      "id": "3",
      "itineraries": [{
        "duration": "PT14H30M",
        "segments": [
          {
            "departure": {"iataCode": "JFK", "at": "2025-06-01T06:00:00"},
            "arrival": {"iataCode": "BOS", "at": "2025-06-01T07:20:00"},
            "carrierCode": "DL", "number": "5710", "duration": "PT1H20M"
          },
          {
            "departure": {"iataCode": "BOS", "at": "2025-06-01T09:00:00"},
            "arrival": {"iataCode": "LHR", "at": "2025-06-01T20:30:00"},
            "carrierCode": "DL", "number": "2", "duration": "PT6H30M"
          }
        ]
      }],
      "price": {"currency": "USD", "total": "489.00"},
      "travelerPricings": [{"fareDetailsBySegment": [{"segmentId": "3", "cabin": "BUSINESS"}, {"segmentId": "4", "cabin": "BUSINESS"}]}]
    },
    {
      "type": "flight-offer",
      "id": "4",
      "itineraries": [{
        "duration": "PT10H10M",
        "segments": [
          {
            "departure": {"iataCode": "JFK", "at": "2025-06-01T20:40:00"},
            "arrival": {"iataCode": "KEF", "at": "2025-06-02T06:10:00"},
            "carrierCode": "FI", "number": "614", "duration": "PT5H30M"
          },
          {
            "departure": {"iataCode": "KEF", "at": "2025-06-02T07:40:00"},
            "arrival": {"iataCode": "LHR", "at": "2025-06-02T11:50:00"},
            "carrierCode": "FI", "number": "450", "duration": "PT3H10M"
          }
        ]
      }],
      "price": {"currency": "USD", "total": "399.99"}
    }
  ],
  "dictionaries": {
    "carriers": {
      "BA": "BRITISH AIRWAYS",
      "AA": "AMERICAN AIRLINES",
      "DL": "DELTA AIR LINES"
    }
  }
}`

// LocationsJSON answers any keyword with London and New York entries.
const LocationsJSON = `{
  "meta": {"count": 3},
  "data": [
    {"type": "location", "subType": "CITY", "name": "LONDON", "iataCode": "LON", "address": {"cityName": "LONDON", "countryCode": "GB"}},
    {"type": "location", "subType": "AIRPORT", "name": "HEATHROW", "iataCode": "LHR", "address": {"cityName": "LONDON", "countryCode": "GB"}},
    {"type": "location", "subType": "AIRPORT", "name": "JOHN F KENNEDY INTL", "iataCode": "JFK", "address": {"cityName": "NEW YORK", "countryCode": "US"}}
  ]
}`
